package textscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractAfterColon is a test helper that extracts the value following the
// first ':' in decl.
func extractAfterColon(t *testing.T, decl string) (string, bool) {
	t.Helper()
	idx := strings.Index(decl, ":")
	require.GreaterOrEqual(t, idx, 0)
	v, _, ok := ExtractValue(decl, idx+1)
	return v, ok
}

func TestExtractValue_Simple(t *testing.T) {
	v, ok := extractAfterColon(t, "--color: #ff0000;")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", v)
}

func TestExtractValue_TerminatesOnBrace(t *testing.T) {
	v, ok := extractAfterColon(t, "--color: red }")
	require.True(t, ok)
	assert.Equal(t, "red", v)
}

func TestExtractValue_SemicolonInsideURL(t *testing.T) {
	v, ok := extractAfterColon(t, "--x: url(data:image/png;base64,AAA==);")
	require.True(t, ok)
	assert.Equal(t, "url(data:image/png;base64,AAA==)", v)
}

func TestExtractValue_NestedCalc(t *testing.T) {
	v, ok := extractAfterColon(t, "--w: calc(100% - calc(2 * var(--gap)));")
	require.True(t, ok)
	assert.Equal(t, "calc(100% - calc(2 * var(--gap)))", v)
}

func TestExtractValue_SemicolonInsideString(t *testing.T) {
	v, ok := extractAfterColon(t, `--content: "a;b";`)
	require.True(t, ok)
	assert.Equal(t, `"a;b"`, v)
}

func TestExtractValue_EscapedQuote(t *testing.T) {
	v, ok := extractAfterColon(t, `--content: "say \"hi\"; done";`)
	require.True(t, ok)
	assert.Equal(t, `"say \"hi\"; done"`, v)
}

func TestExtractValue_MultiLineGradient(t *testing.T) {
	decl := "--bg: linear-gradient(\n  to right,\n  #fff,\n  #000\n);"
	v, ok := extractAfterColon(t, decl)
	require.True(t, ok)
	assert.Equal(t, "linear-gradient(\n  to right,\n  #fff,\n  #000\n)", v)
}

func TestExtractValue_Empty(t *testing.T) {
	_, ok := extractAfterColon(t, "--x: ;")
	assert.False(t, ok)

	_, ok = extractAfterColon(t, "--x:   ")
	assert.False(t, ok)
}

func TestExtractValue_EOFTerminates(t *testing.T) {
	v, ok := extractAfterColon(t, "--x: 12px")
	require.True(t, ok)
	assert.Equal(t, "12px", v)
}

func TestExtractValue_BoxShadowList(t *testing.T) {
	v, ok := extractAfterColon(t, "--shadow: 0 1px 2px rgba(0,0,0,0.1),\n 0 2px 4px rgba(0,0,0,0.2);")
	require.True(t, ok)
	assert.Equal(t, "0 1px 2px rgba(0,0,0,0.1),\n 0 2px 4px rgba(0,0,0,0.2)", v)
}
