package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		lang Language
		tsx  bool
	}{
		{"a/button.ts", LanguageTypeScript, false},
		{"a/button.tsx", LanguageTypeScript, true},
		{"a/button.js", LanguageJavaScript, false},
		{"a/button.mjs", LanguageJavaScript, false},
		{"a/button.css", LanguageUnknown, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.lang, DetectLanguage(tt.path), tt.path)
		assert.Equal(t, tt.tsx, IsTSX(tt.path), tt.path)
	}
}

func TestManager_ParseTypeScript(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	tree, err := m.Parse([]byte("const x: number = 1;"), LanguageTypeScript, false)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "program", root.Kind())
	assert.False(t, root.HasError())
}

func TestManager_ParseFileUnsupported(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	_, err := m.ParseFile([]byte("body {}"), "styles.css")
	assert.Error(t, err)
}

func TestManager_ConcurrentParsing(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := m.Parse([]byte("class Foo extends HTMLElement {}"), LanguageJavaScript, false)
			if assert.NoError(t, err) {
				tree.Close()
			}
		}()
	}
	wg.Wait()
}
