package token

import (
	"regexp"
	"strconv"
	"strings"
)

// nameChecks is the category-inference contract: ordered substring checks
// against the lower-cased token name, first match wins. The ordering is
// load-bearing — "border-color" must classify as color, not border — so do
// not reorder or merge these entries.
var nameChecks = []struct {
	substrings []string
	category   Category
}{
	{[]string{"color", "background", "fill"}, CategoryColor},
	{[]string{"spacing", "gap", "margin", "padding"}, CategorySpacing},
	{[]string{"font", "text", "typography"}, CategoryTypography},
	{[]string{"shadow", "elevation"}, CategoryShadow},
	{[]string{"border", "radius"}, CategoryBorder},
	{[]string{"size", "width", "height"}, CategorySizing},
	{[]string{"animation", "duration", "timing"}, CategoryMotion},
}

var spacingShapeRe = regexp.MustCompile(`^\d+(px|rem|em)$`)

// InferCategory classifies a token by name, falling back to value shape.
func InferCategory(name, value string) Category {
	if c := inferFromName(name); c != CategoryOther {
		return c
	}

	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "#") || strings.HasPrefix(v, "rgb") || strings.HasPrefix(v, "hsl") {
		return CategoryColor
	}
	if spacingShapeRe.MatchString(v) {
		return CategorySpacing
	}

	return CategoryOther
}

func inferFromName(name string) Category {
	lower := strings.ToLower(name)
	for _, check := range nameChecks {
		for _, sub := range check.substrings {
			if strings.Contains(lower, sub) {
				return check.category
			}
		}
	}
	return CategoryOther
}

var (
	hexValueRe = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	numUnitRe  = regexp.MustCompile(`^(\d+(\.\d+)?)(px|rem|em)?$`)
)

// Normalize converts raw value text into the typed Value union. Hex colors
// are lower-cased; spacing/sizing measurements become numeric with the unit
// defaulting to px; everything else is kept raw.
func Normalize(category Category, raw string) Value {
	raw = strings.TrimSpace(raw)

	if hexValueRe.MatchString(raw) {
		return Value{Kind: ValueColor, Hex: strings.ToLower(raw)}
	}

	if category == CategorySpacing || category == CategorySizing {
		if m := numUnitRe.FindStringSubmatch(raw); m != nil {
			n, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				unit := m[3]
				if unit == "" {
					unit = "px"
				}
				return Value{Kind: ValueSpacing, Number: n, Unit: unit}
			}
		}
	}

	return Value{Kind: ValueRaw, Raw: raw}
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
