// Package objlit is an eval-free parser for JS/TS object-literal source text.
// It splits the inner body of an object literal into ordered (key, raw value)
// entries without interpreting expressions, tracking balanced braces,
// brackets, parentheses, and quoted strings character by character. Nested
// objects and arrays are returned as raw text so callers can recurse.
package objlit

import "strings"

// Entry is a single key/value pair from an object literal. RawValue is the
// untrimmed-of-meaning source text of the value: a quoted string, a template
// literal, a balanced `{...}` or `[...]` region, or a bare expression.
type Entry struct {
	Key      string
	RawValue string
}

// ParseEntries parses the inner text of an object literal (outer braces
// already stripped) into ordered entries. Duplicate keys are retained in
// order; precedence is the caller's concern. Text that does not look like a
// `key: value` sequence is skipped rather than reported.
func ParseEntries(body string) []Entry {
	var entries []Entry
	i := 0
	n := len(body)

	for i < n {
		// Skip whitespace and commas between entries.
		for i < n && (isSpace(body[i]) || body[i] == ',') {
			i++
		}
		if i >= n {
			break
		}

		key, next, ok := readKey(body, i)
		if !ok {
			// Not a key start; advance one rune to avoid spinning.
			i++
			continue
		}
		i = next

		// Skip to the ':' separating key and value.
		for i < n && body[i] != ':' {
			i++
		}
		if i >= n {
			break
		}
		i++ // consume ':'
		for i < n && isSpace(body[i]) {
			i++
		}
		if i >= n {
			break
		}

		raw, next2 := readValue(body, i)
		i = next2
		entries = append(entries, Entry{Key: key, RawValue: strings.TrimSpace(raw)})
	}

	return entries
}

// readKey reads a quoted-string key or a bare \w+ key starting at i.
func readKey(body string, i int) (string, int, bool) {
	c := body[i]
	if c == '"' || c == '\'' {
		end := scanString(body, i, c)
		if end < 0 {
			return "", i, false
		}
		return body[i+1 : end], end + 1, true
	}
	j := i
	for j < len(body) && isWord(body[j]) {
		j++
	}
	if j == i {
		return "", i, false
	}
	return body[i:j], j, true
}

// readValue consumes one value starting at i, dispatching on the first
// significant character.
func readValue(body string, i int) (string, int) {
	switch c := body[i]; c {
	case '"', '\'':
		end := scanString(body, i, c)
		if end < 0 {
			return body[i:], len(body)
		}
		return body[i : end+1], end + 1
	case '`':
		end := scanString(body, i, '`')
		if end < 0 {
			return body[i:], len(body)
		}
		return body[i : end+1], end + 1
	case '{':
		end := scanBalanced(body, i, '{', '}')
		return body[i:end], end
	case '[':
		end := scanBalanced(body, i, '[', ']')
		return body[i:end], end
	default:
		// Bare expression: consume up to the next top-level ',' or '}',
		// where top-level means parenthesis depth 0. Handles calls like
		// rem(12) and token(colors.blue, #00f).
		depth := 0
		j := i
		for j < len(body) {
			switch body[j] {
			case '(':
				depth++
			case ')':
				depth--
			case '"', '\'', '`':
				end := scanString(body, j, body[j])
				if end < 0 {
					return body[i:], len(body)
				}
				j = end
			case ',', '}':
				if depth == 0 {
					return body[i:j], j
				}
			}
			j++
		}
		return body[i:j], j
	}
}

// scanString returns the index of the closing unescaped quote, or -1.
func scanString(body string, start int, quote byte) int {
	for j := start + 1; j < len(body); j++ {
		if body[j] == quote && body[j-1] != '\\' {
			return j
		}
	}
	return -1
}

// scanBalanced returns the index one past the region's closing delimiter,
// skipping quoted strings so braces inside them don't affect depth.
func scanBalanced(body string, start int, open, close byte) int {
	depth := 0
	j := start
	for j < len(body) {
		switch c := body[j]; c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j + 1
			}
		case '"', '\'', '`':
			end := scanString(body, j, c)
			if end < 0 {
				return len(body)
			}
			j = end
		}
		j++
	}
	return j
}

// Inner strips one layer of outer braces (or brackets) from raw, returning
// the body text ParseEntries expects. Raw text without braces is returned
// unchanged.
func Inner(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 {
		if (s[0] == '{' && s[len(s)-1] == '}') || (s[0] == '[' && s[len(s)-1] == ']') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// SplitArray splits the inner text of an array literal into top-level
// element texts, honoring nested regions and quoted strings.
func SplitArray(body string) []string {
	var elems []string
	depth := 0
	start := 0
	i := 0
	flush := func(end int) {
		e := strings.TrimSpace(body[start:end])
		if e != "" {
			elems = append(elems, e)
		}
	}
	for i < len(body) {
		switch c := body[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '"', '\'', '`':
			end := scanString(body, i, c)
			if end < 0 {
				i = len(body)
				continue
			}
			i = end
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
		i++
	}
	flush(len(body))
	return elems
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWord(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
