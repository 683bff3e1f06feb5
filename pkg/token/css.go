package token

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/driftlens/driftlens/pkg/ident"
	"github.com/driftlens/driftlens/pkg/textscan"
)

var varRefRe = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`)

// ExtractCSS pulls design tokens out of CSS or SCSS source. Custom properties
// (`--name`) are scanned for .css files, `$name` variables for .scss/.sass.
// namePrefix, when non-empty, keeps only declarations whose name starts with
// it (the leading -- or $ is ignored for the comparison).
func ExtractCSS(path, source, namePrefix string) []DesignToken {
	var decls []textscan.Declaration
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scss", ".sass":
		decls = textscan.ScanSCSSVariables(source)
	default:
		decls = textscan.ScanCustomProperties(source)
	}

	now := time.Now().UTC()
	var tokens []DesignToken
	for _, d := range decls {
		if namePrefix != "" && !strings.HasPrefix(strings.TrimLeft(d.Name, "-$"), namePrefix) {
			continue
		}

		category := InferCategory(d.Name, d.Value)

		var aliases []string
		for _, ref := range varRefRe.FindAllStringSubmatch(d.Value, -1) {
			aliases = append(aliases, ref[1])
		}

		tokens = append(tokens, DesignToken{
			ID:       ident.TokenID(string(SourceCSS), path, d.Name),
			Name:     d.Name,
			Category: category,
			Value:    Normalize(category, d.Value),
			Source: Source{
				Kind: SourceCSS,
				Path: path,
				Line: d.Line,
			},
			Aliases:   aliases,
			ScannedAt: now,
		})
	}

	return tokens
}
