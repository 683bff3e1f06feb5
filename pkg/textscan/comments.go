// Package textscan provides character-level scanning primitives for CSS/SCSS
// and JS/TS source text: comment stripping, balanced-value extraction, and
// line-number tracking. It has no dependencies and does no allocation beyond
// the returned strings.
package textscan

import "strings"

// StripBlockComments blanks every /* ... */ region in src, preserving
// newlines so that byte offsets and line numbers computed against the
// stripped text still line up with the original. All other characters inside
// a comment are replaced with spaces. Unterminated comments are blanked to
// the end of input. No other comment forms are recognized.
func StripBlockComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	inComment := false
	i := 0
	for i < len(src) {
		if !inComment && i+1 < len(src) && src[i] == '/' && src[i+1] == '*' {
			inComment = true
			b.WriteString("  ")
			i += 2
			continue
		}
		if inComment && i+1 < len(src) && src[i] == '*' && src[i+1] == '/' {
			inComment = false
			b.WriteString("  ")
			i += 2
			continue
		}
		c := src[i]
		if inComment && c != '\n' {
			b.WriteByte(' ')
		} else {
			b.WriteByte(c)
		}
		i++
	}

	return b.String()
}

// LineNumber returns the 1-based line number of byte offset in src.
// Offsets past the end of src report the last line.
func LineNumber(src string, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return 1 + strings.Count(src[:offset], "\n")
}
