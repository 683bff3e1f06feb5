// Package token extracts normalized design tokens from JSON documents, CSS
// and SCSS stylesheets, and TypeScript theme files. All extraction is
// heuristic: values are read as literals, never evaluated.
package token

import "time"

// Category classifies what kind of design value a token holds.
type Category string

const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryTypography Category = "typography"
	CategoryShadow     Category = "shadow"
	CategoryBorder     Category = "border"
	CategorySizing     Category = "sizing"
	CategoryMotion     Category = "motion"
	CategoryOther      Category = "other"
)

// ValueKind discriminates the Value union.
type ValueKind string

const (
	ValueColor   ValueKind = "color"
	ValueSpacing ValueKind = "spacing"
	ValueRaw     ValueKind = "raw"
)

// Value is the normalized token value: a hex color, a numeric spacing with
// unit, or the raw source text when neither form applies.
type Value struct {
	Kind ValueKind `json:"kind"`
	// Hex is set for ValueColor; always lower-case.
	Hex string `json:"hex,omitempty"`
	// Number and Unit are set for ValueSpacing. Unit is px, rem, or em.
	Number float64 `json:"number,omitempty"`
	Unit   string  `json:"unit,omitempty"`
	// Raw is set for ValueRaw.
	Raw string `json:"raw,omitempty"`
}

// String returns the value in its source-like textual form.
func (v Value) String() string {
	switch v.Kind {
	case ValueColor:
		return v.Hex
	case ValueSpacing:
		return trimFloat(v.Number) + v.Unit
	default:
		return v.Raw
	}
}

// SourceKind discriminates the Source union.
type SourceKind string

const (
	SourceJSON       SourceKind = "json"
	SourceCSS        SourceKind = "css"
	SourceTypeScript SourceKind = "typescript"
)

// Source identifies where a token was discovered.
type Source struct {
	Kind SourceKind `json:"kind"`
	Path string     `json:"path"`
	// Key is the dotted document path for JSON sources.
	Key string `json:"key,omitempty"`
	// Line is the 1-based declaration line for CSS and TypeScript sources.
	Line int `json:"line,omitempty"`
	// TypeName is the declaring type or variable for TypeScript sources.
	TypeName string `json:"typeName,omitempty"`
}

// DesignToken is a single named design value. Tokens are immutable after
// creation; two tokens with the same ID are the same logical token and only
// the first discovered is retained.
type DesignToken struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Value    Value    `json:"value"`
	Source   Source   `json:"source"`
	// Aliases lists alternate names, e.g. a referenced CSS variable.
	Aliases []string `json:"aliases,omitempty"`
	// UsedBy is populated by a downstream consumer, not this engine.
	UsedBy    []string          `json:"usedBy,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	ScannedAt time.Time         `json:"scannedAt"`
}
