package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Default glob sets used when a scan config supplies no explicit file list.
var (
	DefaultTokenGlobs = []string{
		"**/*.css", "**/*.scss", "**/*.sass",
		"**/*.json",
		"**/*.ts", "**/*.tsx", "**/*.js", "**/*.jsx",
	}
	DefaultComponentGlobs = []string{
		"**/*.ts", "**/*.tsx", "**/*.js", "**/*.jsx",
	}
	DefaultExcludes = []string{
		"**/node_modules/**",
		"**/dist/**",
		"**/build/**",
		"**/.git/**",
		"**/coverage/**",
		"**/*.d.ts",
	}
)

// Discover walks root and returns absolute paths matching any include glob
// and no exclude glob. The result is sorted, which doubles as the stable
// pre-sort that keeps first-wins deduplication deterministic.
func Discover(root string, includes, excludes []string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range includes {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			if matchesAny(excludes, match) {
				continue
			}
			seen[match] = struct{}{}
			out = append(out, filepath.Join(root, filepath.FromSlash(match)))
		}
	}

	sort.Strings(out)
	return out, nil
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
