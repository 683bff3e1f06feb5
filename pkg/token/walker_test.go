package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlens/driftlens/pkg/objlit"
)

type walked struct {
	name     string
	value    string
	category Category
}

func runWalker(t *testing.T, body, prefix string, hint Category, semantic bool) []walked {
	t.Helper()
	var out []walked
	walkEntries(objlit.ParseEntries(body), prefix, hint, semantic, func(name, raw string, cat Category) {
		out = append(out, walked{name, raw, cat})
	})
	return out
}

func TestWalker_FlatStrings(t *testing.T) {
	out := runWalker(t, `primary: "#f00", secondary: "#0f0"`, "colors", CategoryColor, false)
	require.Len(t, out, 2)
	assert.Equal(t, walked{"colors.primary", "#f00", CategoryColor}, out[0])
	assert.Equal(t, walked{"colors.secondary", "#0f0", CategoryColor}, out[1])
}

func TestWalker_NestedObjects(t *testing.T) {
	out := runWalker(t, `gray: { 50: "#fafafa", 900: "#111" }`, "colors", CategoryColor, false)
	require.Len(t, out, 2)
	assert.Equal(t, "colors.gray.50", out[0].name)
	assert.Equal(t, "#fafafa", out[0].value)
	assert.Equal(t, "colors.gray.900", out[1].name)
}

func TestWalker_ValueObjectTerminal(t *testing.T) {
	out := runWalker(t, `sm: { value: "4px" }, md: { value: "8px" }`, "spacing", CategorySpacing, false)
	require.Len(t, out, 2)
	assert.Equal(t, walked{"spacing.sm", "4px", CategorySpacing}, out[0])
	assert.Equal(t, walked{"spacing.md", "8px", CategorySpacing}, out[1])
}

func TestWalker_SemanticLightBranch(t *testing.T) {
	body := `bg: { value: { _light: "#fff", _dark: "#000" } }`
	out := runWalker(t, body, "colors", CategoryColor, true)
	require.Len(t, out, 1)
	assert.Equal(t, walked{"colors.bg", "#fff", CategoryColor}, out[0])

	// Without semantic mode the _light branch is not taken; recursion then
	// skips the "value" key, yielding nothing.
	out = runWalker(t, body, "colors", CategoryColor, false)
	assert.Empty(t, out)
}

func TestWalker_FunctionCallTerminal(t *testing.T) {
	out := runWalker(t, `sm: rem(12), md: rem(16)`, "fontSizes", CategoryOther, false)
	require.Len(t, out, 2)
	assert.Equal(t, "rem(12)", out[0].value)
	// Hint was other: category re-inferred from the full path "fontSizes.sm".
	assert.Equal(t, CategoryTypography, out[0].category)
}

func TestWalker_ArrayElements(t *testing.T) {
	out := runWalker(t, `ramp: ["#111", "#222", "plain"]`, "colors", CategoryOther, false)
	require.Len(t, out, 3)
	assert.Equal(t, "colors.ramp.0", out[0].name)
	assert.Equal(t, "#111", out[0].value)
	assert.Equal(t, CategoryColor, out[0].category, "color literal forces color category")
	assert.Equal(t, "colors.ramp.2", out[2].name)
	assert.Equal(t, CategoryColor, out[2].category, "path contains 'color'")
}

func TestWalker_SkipsNonTokenKeys(t *testing.T) {
	out := runWalker(t, `type: "color", description: "the brand", primary: "#f00"`, "", CategoryOther, false)
	require.Len(t, out, 1)
	assert.Equal(t, "primary", out[0].name)
}

func TestWalker_NonTokenKeyOverride(t *testing.T) {
	// "type" normally skipped, but a hex-string content looks like a token
	// value, so the override keeps it.
	out := runWalker(t, `type: "#fff"`, "", CategoryOther, false)
	require.Len(t, out, 1)
	assert.Equal(t, "type", out[0].name)
	assert.Equal(t, "#fff", out[0].value)
}

func TestWalker_BareScalarsSkipped(t *testing.T) {
	out := runWalker(t, `weight: 400, flag: true, ref: someVar`, "", CategoryOther, false)
	assert.Empty(t, out)
}

func TestWalker_CategoryHintRefinedOnRecursion(t *testing.T) {
	out := runWalker(t, `shadow: { low: "0 1px 2px black" }`, "", CategoryOther, false)
	require.Len(t, out, 1)
	assert.Equal(t, "shadow.low", out[0].name)
	assert.Equal(t, CategoryShadow, out[0].category)
}

func TestWalker_TemplateLiteralTerminal(t *testing.T) {
	out := runWalker(t, "glow: `0 0 4px ${c}`", "shadows", CategoryShadow, false)
	require.Len(t, out, 1)
	assert.Equal(t, "0 0 4px ${c}", out[0].value)
}

func TestWalker_DuplicateKeysBothEmitted(t *testing.T) {
	out := runWalker(t, `a: "#111", a: "#222"`, "colors", CategoryColor, false)
	require.Len(t, out, 2)
	assert.Equal(t, "#111", out[0].value)
	assert.Equal(t, "#222", out[1].value)
}
