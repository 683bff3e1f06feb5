package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenID_Deterministic(t *testing.T) {
	a := TokenID("css", "/app/theme.css", "--color-primary")
	b := TokenID("css", "/app/theme.css", "--color-primary")
	assert.Equal(t, a, b)
	assert.Regexp(t, `^tok_[0-9a-f]{16}$`, a)
}

func TestTokenID_DistinctTriples(t *testing.T) {
	seen := map[string]bool{}
	triples := [][3]string{
		{"css", "/a.css", "--x"},
		{"json", "/a.css", "--x"},
		{"css", "/b.css", "--x"},
		{"css", "/a.css", "--y"},
		// Boundary shift must not collide.
		{"css", "/a.cs", "s--x"},
	}
	for _, tr := range triples {
		id := TokenID(tr[0], tr[1], tr[2])
		assert.False(t, seen[id], "collision for %v", tr)
		seen[id] = true
	}
}

func TestComponentID_Prefix(t *testing.T) {
	assert.Regexp(t, `^cmp_[0-9a-f]{16}$`, ComponentID("/src/button.ts", "MyButton"))
	assert.NotEqual(t,
		ComponentID("/src/button.ts", "MyButton"),
		ComponentID("/src/button.ts", "MyBadge"))
}
