package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlens/driftlens/pkg/parser"
	"github.com/driftlens/driftlens/pkg/scan"
)

func TestWatcher_RescanOnWrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.css"), []byte("--a: red;\n"), 0o644))

	pm := parser.NewManager(nil)
	defer pm.Close()
	eng := scan.NewEngine(pm, nil, nil)

	results := make(chan *scan.TokenResult, 4)
	w, err := New(eng, Options{
		DebounceMs: 30,
		Scan:       scan.Config{ProjectRoot: dir},
		OnTokens:   func(res *scan.TokenResult) { results <- res },
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop() //nolint:errcheck

	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.css"), []byte("--a: red;\n--b: blue;\n"), 0o644))

	select {
	case res := <-results:
		assert.Len(t, res.Items, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no re-scan within deadline")
	}
}

func TestWatcher_IgnoresUnrelatedExtensions(t *testing.T) {
	dir := t.TempDir()

	pm := parser.NewManager(nil)
	defer pm.Close()
	eng := scan.NewEngine(pm, nil, nil)

	results := make(chan *scan.TokenResult, 1)
	w, err := New(eng, Options{
		DebounceMs: 20,
		Scan:       scan.Config{ProjectRoot: dir},
		OnTokens:   func(res *scan.TokenResult) { results <- res },
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop() //nolint:errcheck

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	select {
	case <-results:
		t.Fatal("txt change should not trigger a scan")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopIdempotent(t *testing.T) {
	pm := parser.NewManager(nil)
	defer pm.Close()
	eng := scan.NewEngine(pm, nil, nil)

	w, err := New(eng, Options{Scan: scan.Config{ProjectRoot: t.TempDir()}}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
