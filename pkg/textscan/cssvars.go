package textscan

import "regexp"

// Declaration is a single custom-property or SCSS variable declaration
// located in a stylesheet.
type Declaration struct {
	Name  string
	Value string
	// Line is the 1-based line number in the original (non-stripped) source.
	Line int
}

var (
	cssVarRe  = regexp.MustCompile(`(--[A-Za-z0-9_-]+)\s*:`)
	scssVarRe = regexp.MustCompile(`(\$[A-Za-z0-9_-]+)\s*:`)
)

// ScanCustomProperties finds every `--name: value` declaration in CSS source.
// Matching runs against the comment-stripped text; line numbers are computed
// against the original text, which stays valid because stripping preserves
// newlines.
func ScanCustomProperties(src string) []Declaration {
	return scanVariables(src, cssVarRe)
}

// ScanSCSSVariables finds every `$name: value` declaration in SCSS source.
func ScanSCSSVariables(src string) []Declaration {
	return scanVariables(src, scssVarRe)
}

func scanVariables(src string, re *regexp.Regexp) []Declaration {
	stripped := StripBlockComments(src)

	var decls []Declaration
	for _, m := range re.FindAllStringSubmatchIndex(stripped, -1) {
		nameStart, nameEnd := m[2], m[3]
		value, _, ok := ExtractValue(stripped, m[1])
		if !ok {
			continue
		}
		decls = append(decls, Declaration{
			Name:  stripped[nameStart:nameEnd],
			Value: value,
			Line:  LineNumber(src, m[0]),
		})
	}
	return decls
}
