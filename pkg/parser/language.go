// Package parser wraps tree-sitter with pooled, thread-safe parsers for
// TypeScript and JavaScript sources.
package parser

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported grammar.
type Language int

const (
	LanguageTypeScript Language = iota
	LanguageJavaScript
	LanguageUnknown
)

func (l Language) String() string {
	switch l {
	case LanguageTypeScript:
		return "typescript"
	case LanguageJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// DetectLanguage maps a file path to its grammar by extension.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return LanguageTypeScript
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	default:
		return LanguageUnknown
	}
}

// IsTSX reports whether path should use the TSX grammar variant.
func IsTSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tsx")
}
