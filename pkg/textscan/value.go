package textscan

// ExtractValue consumes a property value starting at start, which must point
// just past the ':' of a `name: value` declaration. It returns the trimmed
// value text and the byte offset one past the terminator, or ok=false when no
// non-whitespace content was found.
//
// The scan tracks parenthesis depth and single/double quoted strings, so
// semicolons inside url(data:...;base64) or quoted content do not terminate
// the value, and multi-line values (gradients, box-shadow lists) are consumed
// whole. Termination happens on ';' or '}' outside a string at depth 0, or at
// end of input. Escaping is recognized only as "previous character is a
// backslash" — no deeper escape semantics.
func ExtractValue(text string, start int) (value string, end int, ok bool) {
	i := start
	for i < len(text) && isSpace(text[i]) {
		i++
	}

	depth := 0
	var quote byte // 0 when outside a string
	j := i
	for j < len(text) {
		c := text[j]
		escaped := j > 0 && text[j-1] == '\\'

		switch {
		case quote != 0:
			if c == quote && !escaped {
				quote = 0
			}
		case c == '"' || c == '\'':
			if !escaped {
				quote = c
			}
		case c == '(':
			depth++
		case c == ')':
			depth--
		case (c == ';' || c == '}') && depth == 0:
			v := trim(text[i:j])
			if v == "" {
				return "", j + 1, false
			}
			return v, j + 1, true
		}
		j++
	}

	v := trim(text[i:j])
	if v == "" {
		return "", j, false
	}
	return v, j, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func trim(s string) string {
	a := 0
	b := len(s)
	for a < b && isSpace(s[a]) {
		a++
	}
	for b > a && isSpace(s[b-1]) {
		b--
	}
	return s[a:b]
}
