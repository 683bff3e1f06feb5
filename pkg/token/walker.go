package token

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/driftlens/driftlens/pkg/objlit"
)

// nonTokenKeys are configuration-shaped keys skipped by the walker. A key is
// still walked when its raw content itself looks like a token value, because
// some frameworks reuse these spellings as token names (sizes.from, etc.).
var nonTokenKeys = map[string]struct{}{
	"value":       {},
	"description": {},
	"type":        {},
	"$value":      {},
	"$type":       {},
}

var (
	valueObjectRe = regexp.MustCompile(`^\{\s*["']?value["']?\s*:`)
	callValueRe   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*\(\s*-?\d+(\.\d+)?\s*\)$`)
	colorishRe    = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|rgba?\(|hsla?\()`)
)

// walkEmit receives each terminal token found by the walker.
type walkEmit func(name, rawValue string, category Category)

// walkEntries recursively walks parsed object-literal entries, emitting
// terminal tokens. prefix is the dotted path so far; hint is the category
// inherited from enclosing keys; semantic enables the `{ value: { _light }}`
// branch used by semantic token definitions.
func walkEntries(entries []objlit.Entry, prefix string, hint Category, semantic bool, emit walkEmit) {
	for _, entry := range entries {
		raw := strings.TrimSpace(entry.RawValue)

		if _, skip := nonTokenKeys[entry.Key]; skip && !looksLikeTokenValue(raw) {
			continue
		}

		name := entry.Key
		if prefix != "" {
			name = prefix + "." + entry.Key
		}

		switch {
		case strings.HasPrefix(raw, "{"):
			walkObjectValue(entry.Key, name, raw, hint, semantic, emit)

		case isQuoted(raw):
			emit(name, unquote(raw), resolveCategory(hint, name, entry.Key, unquote(raw)))

		case strings.HasPrefix(raw, "`") && strings.HasSuffix(raw, "`") && len(raw) >= 2:
			emit(name, raw[1:len(raw)-1], resolveCategory(hint, name, entry.Key, raw))

		case callValueRe.MatchString(raw):
			// rem(12), spacing(4) — keep the call text as the value.
			emit(name, raw, resolveCategory(hint, name, entry.Key, raw))

		case strings.HasPrefix(raw, "["):
			walkArrayValue(name, raw, hint, entry.Key, emit)
		}
		// Bare identifiers and numbers don't match a recognized shape and
		// are skipped, not reported.
	}
}

// walkObjectValue handles `{...}` entry values: terminal `{ value: "..." }`
// forms first, then semantic `_light` branches, then plain recursion.
func walkObjectValue(key, name, raw string, hint Category, semantic bool, emit walkEmit) {
	inner := objlit.ParseEntries(objlit.Inner(raw))

	if v, ok := findEntry(inner, "value", "$value"); ok {
		vraw := strings.TrimSpace(v)
		if isQuoted(vraw) {
			emit(name, unquote(vraw), resolveCategory(hint, name, key, unquote(vraw)))
			return
		}
		if semantic && strings.HasPrefix(vraw, "{") {
			branches := objlit.ParseEntries(objlit.Inner(vraw))
			if light, ok := findEntry(branches, "_light", "base"); ok && isQuoted(light) {
				emit(name, unquote(light), resolveCategory(hint, name, key, unquote(light)))
				return
			}
		}
		// A value key of unrecognized shape falls through to recursion,
		// where the key-skip rule applies.
	}

	childHint := hint
	if c := inferFromName(key); c != CategoryOther {
		childHint = c
	}
	walkEntries(inner, name, childHint, semantic, emit)
}

// walkArrayValue emits one indexed token per quoted-string element of an
// array literal. Elements that look like color literals force the color
// category regardless of hint.
func walkArrayValue(name, raw string, hint Category, key string, emit walkEmit) {
	for i, elem := range objlit.SplitArray(objlit.Inner(raw)) {
		if !isQuoted(elem) {
			continue
		}
		v := unquote(elem)
		indexed := name + "." + strconv.Itoa(i)
		cat := resolveCategory(hint, indexed, key, v)
		if colorishRe.MatchString(v) {
			cat = CategoryColor
		}
		emit(indexed, v, cat)
	}
}

// resolveCategory applies the hint-propagation rule: a useful hint wins;
// otherwise re-infer from the full dotted path, then the immediate key,
// before falling back to other.
func resolveCategory(hint Category, fullPath, key, value string) Category {
	if hint != "" && hint != CategoryOther {
		return hint
	}
	if c := InferCategory(fullPath, value); c != CategoryOther {
		return c
	}
	return InferCategory(key, value)
}

func looksLikeTokenValue(raw string) bool {
	if strings.HasPrefix(raw, "[") {
		return true
	}
	if valueObjectRe.MatchString(raw) {
		return true
	}
	return isQuoted(raw) && hexValueRe.MatchString(unquote(raw))
}

func findEntry(entries []objlit.Entry, keys ...string) (string, bool) {
	for _, e := range entries {
		for _, k := range keys {
			if e.Key == k {
				return e.RawValue, true
			}
		}
	}
	return "", false
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')
}

func unquote(s string) string {
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}
