package objlit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntries_FlatStrings(t *testing.T) {
	entries := ParseEntries(`primary: "#ff0000", secondary: '#00ff00'`)
	require.Len(t, entries, 2)
	assert.Equal(t, "primary", entries[0].Key)
	assert.Equal(t, `"#ff0000"`, entries[0].RawValue)
	assert.Equal(t, "secondary", entries[1].Key)
	assert.Equal(t, `'#00ff00'`, entries[1].RawValue)
}

func TestParseEntries_QuotedKeys(t *testing.T) {
	entries := ParseEntries(`"50": "#fafafa", '100': "#f5f5f5"`)
	require.Len(t, entries, 2)
	assert.Equal(t, "50", entries[0].Key)
	assert.Equal(t, "100", entries[1].Key)
}

func TestParseEntries_NestedObject(t *testing.T) {
	entries := ParseEntries(`gray: { 50: "#fafafa", 100: "#f5f5f5" }, blue: "#00f"`)
	require.Len(t, entries, 2)
	assert.Equal(t, "gray", entries[0].Key)
	assert.Equal(t, `{ 50: "#fafafa", 100: "#f5f5f5" }`, entries[0].RawValue)
	assert.Equal(t, "blue", entries[1].Key)
}

func TestParseEntries_NestedArray(t *testing.T) {
	entries := ParseEntries(`fonts: ["Inter", "sans-serif"], weight: 400`)
	require.Len(t, entries, 2)
	assert.Equal(t, `["Inter", "sans-serif"]`, entries[0].RawValue)
	assert.Equal(t, "400", entries[1].RawValue)
}

func TestParseEntries_FunctionCallValue(t *testing.T) {
	entries := ParseEntries(`sm: rem(12), md: rem(16), lg: calc(1rem + 2px)`)
	require.Len(t, entries, 3)
	assert.Equal(t, "rem(12)", entries[0].RawValue)
	assert.Equal(t, "rem(16)", entries[1].RawValue)
	assert.Equal(t, "calc(1rem + 2px)", entries[2].RawValue)
}

func TestParseEntries_CommaInsideCall(t *testing.T) {
	entries := ParseEntries(`shadow: rgba(0, 0, 0, 0.5), next: "x"`)
	require.Len(t, entries, 2)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", entries[0].RawValue)
	assert.Equal(t, "next", entries[1].Key)
}

func TestParseEntries_TemplateLiteral(t *testing.T) {
	entries := ParseEntries("shadow: `0 1px 2px ${color}`, z: 10")
	require.Len(t, entries, 2)
	assert.Equal(t, "`0 1px 2px ${color}`", entries[0].RawValue)
	assert.Equal(t, "10", entries[1].RawValue)
}

func TestParseEntries_DuplicateKeysRetained(t *testing.T) {
	entries := ParseEntries(`a: "1", a: "2"`)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, `"1"`, entries[0].RawValue)
	assert.Equal(t, "a", entries[1].Key)
	assert.Equal(t, `"2"`, entries[1].RawValue)
}

func TestParseEntries_BraceInsideString(t *testing.T) {
	entries := ParseEntries(`a: { tpl: "closing } inside" }, b: "x"`)
	require.Len(t, entries, 2)
	assert.Equal(t, `{ tpl: "closing } inside" }`, entries[0].RawValue)
	assert.Equal(t, "b", entries[1].Key)
}

func TestParseEntries_TrailingComma(t *testing.T) {
	entries := ParseEntries("a: \"1\",\nb: \"2\",\n")
	require.Len(t, entries, 2)
}

// Round trip: re-serializing parsed entries and parsing again recovers the
// same pairs.
func TestParseEntries_RoundTrip(t *testing.T) {
	body := `colors: { red: "#f00", deep: { blue: "#00f" } }, size: rem(12), list: ["a", "b"]`
	first := ParseEntries(body)
	require.Len(t, first, 3)

	serialized := ""
	for i, e := range first {
		if i > 0 {
			serialized += ", "
		}
		serialized += e.Key + ": " + e.RawValue
	}

	second := ParseEntries(serialized)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.Equal(t, first[i].RawValue, second[i].RawValue)
	}
}

func TestInner(t *testing.T) {
	assert.Equal(t, ` a: "1" `, Inner(`{ a: "1" }`))
	assert.Equal(t, `"a", "b"`, Inner(`["a", "b"]`))
	assert.Equal(t, `bare`, Inner(`bare`))
}

func TestSplitArray(t *testing.T) {
	elems := SplitArray(`"a", "b,c", rgba(0, 0, 0, 1), ["x", "y"]`)
	require.Len(t, elems, 4)
	assert.Equal(t, `"a"`, elems[0])
	assert.Equal(t, `"b,c"`, elems[1])
	assert.Equal(t, "rgba(0, 0, 0, 1)", elems[2])
	assert.Equal(t, `["x", "y"]`, elems[3])
}
