package token

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/driftlens/driftlens/pkg/ident"
)

// ExtractJSON walks a parsed JSON document for design tokens. A node is a
// token when it is an object containing "value" or "$value"; other objects
// are recursed into with a dotted path. Keys at each level are visited in
// sorted order so output is deterministic.
func ExtractJSON(path string, data []byte) ([]DesignToken, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid token document: %w", err)
	}

	now := time.Now().UTC()
	var tokens []DesignToken
	walkJSON(doc, "", func(key string, node map[string]any) {
		tok := jsonToken(path, key, node, now)
		tokens = append(tokens, tok)
	})

	return tokens, nil
}

func walkJSON(node map[string]any, prefix string, found func(key string, node map[string]any)) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		child, ok := node[k].(map[string]any)
		if !ok {
			continue
		}

		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if _, has := child["value"]; has {
			found(key, child)
			continue
		}
		if _, has := child["$value"]; has {
			found(key, child)
			continue
		}

		walkJSON(child, key, found)
	}
}

func jsonToken(path, key string, node map[string]any, now time.Time) DesignToken {
	raw := jsonScalar(node["value"])
	if raw == "" {
		raw = jsonScalar(node["$value"])
	}

	category := CategoryOther
	if t := jsonScalar(node["type"]); t != "" {
		category = namedCategory(t)
	} else if t := jsonScalar(node["$type"]); t != "" {
		category = namedCategory(t)
	}
	if category == CategoryOther {
		category = InferCategory(key, raw)
	}

	var metadata map[string]string
	if d := jsonScalar(node["description"]); d != "" {
		metadata = map[string]string{"description": d}
	} else if d := jsonScalar(node["$description"]); d != "" {
		metadata = map[string]string{"description": d}
	}

	return DesignToken{
		ID:       ident.TokenID(string(SourceJSON), path, key),
		Name:     key,
		Category: category,
		Value:    Normalize(category, raw),
		Source: Source{
			Kind: SourceJSON,
			Path: path,
			Key:  key,
		},
		Metadata:  metadata,
		ScannedAt: now,
	}
}

// namedCategory maps a declared W3C-style token type onto our categories.
func namedCategory(t string) Category {
	switch t {
	case "color":
		return CategoryColor
	case "spacing", "dimension", "space":
		return CategorySpacing
	case "typography", "fontFamily", "fontSize", "fontWeight", "lineHeight":
		return CategoryTypography
	case "shadow", "boxShadow":
		return CategoryShadow
	case "border", "borderRadius":
		return CategoryBorder
	case "sizing", "size":
		return CategorySizing
	case "duration", "transition", "motion", "cubicBezier":
		return CategoryMotion
	default:
		return CategoryOther
	}
}

func jsonScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}
