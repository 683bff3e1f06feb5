package component

import "strings"

// docInfo is the parsed form of a class-level JSDoc block.
type docInfo struct {
	Description string
	Summary     string
	Deprecated  bool
	Events      []JSDocEvent
	Slots       []JSDocSlot
	CSSProps    []JSDocCSSProperty
	CSSParts    []JSDocPart
}

// parseClassDoc parses the documentation tags web-component authors put on
// class declarations. Tags come in several textual sub-formats (type-first
// vs name-first, dash- vs space-separated descriptions); parsing is
// permissive, and a tag whose name token ends in sentence punctuation is
// treated as prose and dropped without failing the rest of the block.
func parseClassDoc(comment string) docInfo {
	var info docInfo
	if !strings.HasPrefix(comment, "/**") {
		return info
	}
	body := strings.TrimSuffix(strings.TrimPrefix(comment, "/**"), "*/")

	var descParts []string
	seenTag := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			if !seenTag {
				descParts = append(descParts, line)
			}
			continue
		}
		seenTag = true

		tag, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		switch strings.ToLower(tag) {
		case "@deprecated":
			info.Deprecated = true
		case "@summary":
			info.Summary = rest
		case "@fires", "@event":
			if ev := parseFiresTag(rest); ev != nil {
				info.Events = append(info.Events, *ev)
			}
		case "@slot":
			if s := parseSlotTag(rest); s != nil {
				info.Slots = append(info.Slots, *s)
			}
		case "@cssproperty", "@cssprop":
			if p := parseCSSPropTag(rest); p != nil {
				info.CSSProps = append(info.CSSProps, *p)
			}
		case "@csspart":
			if p := parseCSSPartTag(rest); p != nil {
				info.CSSParts = append(info.CSSParts, *p)
			}
		}
	}
	info.Description = strings.Join(descParts, " ")
	return info
}

// takeBracedType consumes a leading `{Type}` annotation, returning the inner
// type text and the remainder. Generics nest braces rarely, but a depth
// counter keeps `{Record<string, {x: number}>}` intact.
func takeBracedType(s string) (string, string) {
	if !strings.HasPrefix(s, "{") {
		return "", s
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[1:i]), strings.TrimSpace(s[i+1:])
			}
		}
	}
	return "", s
}

// takeNameToken splits off the first whitespace-delimited token.
func takeNameToken(s string) (string, string) {
	name, rest, found := strings.Cut(s, " ")
	if !found {
		return strings.TrimSpace(s), ""
	}
	return name, strings.TrimSpace(rest)
}

// badNameToken reports whether a token reads as end-of-sentence prose
// rather than an identifier.
func badNameToken(name string) bool {
	return name != "" && strings.ContainsRune(".!?,:;", rune(name[len(name)-1]))
}

func trimDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "-")
	return strings.TrimSpace(s)
}

func parseFiresTag(rest string) *JSDocEvent {
	typ, rest := takeBracedType(rest)
	name, rest := takeNameToken(rest)
	if name == "" || badNameToken(name) {
		return nil
	}
	// Name-first form: @fires change {CustomEvent} description.
	if typ == "" {
		typ, rest = takeBracedType(rest)
	}
	return &JSDocEvent{Name: name, Type: typ, Description: trimDescription(rest)}
}

func parseSlotTag(rest string) *JSDocSlot {
	if rest == "" {
		return &JSDocSlot{}
	}
	// "@slot - description" documents the default (unnamed) slot.
	if strings.HasPrefix(rest, "-") {
		return &JSDocSlot{Description: trimDescription(rest)}
	}
	name, rest := takeNameToken(rest)
	if badNameToken(name) {
		return nil
	}
	return &JSDocSlot{Name: name, Description: trimDescription(rest)}
}

func parseCSSPropTag(rest string) *JSDocCSSProperty {
	_, rest = takeBracedType(rest)
	name, rest := takeNameToken(rest)
	if name == "" || badNameToken(name) {
		return nil
	}
	var def string
	// Bracketed default form: [--x=value].
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		name = name[1 : len(name)-1]
		if eq := strings.Index(name, "="); eq >= 0 {
			def = name[eq+1:]
			name = name[:eq]
		}
	}
	return &JSDocCSSProperty{Name: name, Default: def, Description: trimDescription(rest)}
}

func parseCSSPartTag(rest string) *JSDocPart {
	name, rest := takeNameToken(rest)
	if name == "" || badNameToken(name) {
		return nil
	}
	return &JSDocPart{Name: name, Description: trimDescription(rest)}
}
