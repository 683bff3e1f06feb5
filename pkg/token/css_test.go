package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCSS_Basic(t *testing.T) {
	src := ":root {\n  --color-primary: #FF0000;\n  --spacing-md: 16px;\n}\n"
	tokens := ExtractCSS("/app/theme.css", src, "")
	require.Len(t, tokens, 2)

	primary := tokens[0]
	assert.Equal(t, "--color-primary", primary.Name)
	assert.Equal(t, CategoryColor, primary.Category)
	assert.Equal(t, ValueColor, primary.Value.Kind)
	assert.Equal(t, "#ff0000", primary.Value.Hex)
	assert.Equal(t, SourceCSS, primary.Source.Kind)
	assert.Equal(t, "/app/theme.css", primary.Source.Path)
	assert.Equal(t, 2, primary.Source.Line)
	assert.NotEmpty(t, primary.ID)

	md := tokens[1]
	assert.Equal(t, CategorySpacing, md.Category)
	assert.Equal(t, ValueSpacing, md.Value.Kind)
	assert.Equal(t, 16.0, md.Value.Number)
}

func TestExtractCSS_LineNumbersSurviveComments(t *testing.T) {
	src := "/* theme\n * colors\n */\n:root {\n  --c: red;\n}\n"
	tokens := ExtractCSS("/t.css", src, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, 5, tokens[0].Source.Line)
}

func TestExtractCSS_PrefixFilter(t *testing.T) {
	src := "--ds-color: #fff;\n--other: 1px;\n"
	tokens := ExtractCSS("/t.css", src, "ds-")
	require.Len(t, tokens, 1)
	assert.Equal(t, "--ds-color", tokens[0].Name)
}

func TestExtractCSS_VarReferenceAliases(t *testing.T) {
	src := "--surface: var(--color-bg, #fff);\n"
	tokens := ExtractCSS("/t.css", src, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, []string{"--color-bg"}, tokens[0].Aliases)
}

func TestExtractCSS_SCSSVariables(t *testing.T) {
	src := "$brand: #00FF00;\n$gutter: 1.5rem;\n"
	tokens := ExtractCSS("/t.scss", src, "")
	require.Len(t, tokens, 2)
	assert.Equal(t, "$brand", tokens[0].Name)
	assert.Equal(t, "#00ff00", tokens[0].Value.Hex)
}

func TestExtractCSS_BorderColorOrdering(t *testing.T) {
	tokens := ExtractCSS("/t.css", "--border-color: blue;\n", "")
	require.Len(t, tokens, 1)
	assert.Equal(t, CategoryColor, tokens[0].Category)
}
