// Package scan orchestrates token and component extraction over a project
// tree: file discovery, an optional result cache, a bounded worker pool, and
// a deterministic first-wins merge in file submission order.
package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/driftlens/driftlens/pkg/cache"
	"github.com/driftlens/driftlens/pkg/component"
	"github.com/driftlens/driftlens/pkg/parser"
	"github.com/driftlens/driftlens/pkg/signal"
	"github.com/driftlens/driftlens/pkg/token"
	"github.com/driftlens/driftlens/pkg/util"
)

// ErrInvalidConfig is returned for configurations the engine cannot act on.
// It is the only fatal error class; per-file failures are reported in the
// result's Errors list instead.
var ErrInvalidConfig = errors.New("invalid scan configuration")

// Config controls one scan.
type Config struct {
	// ProjectRoot is the directory to discover files under. Required unless
	// Files is set.
	ProjectRoot string

	// Files overrides discovery with an explicit, already-resolved path list.
	Files []string

	// CSSVariablePrefix keeps only CSS/SCSS variables whose name starts with
	// the prefix (compared without leading -- or $).
	CSSVariablePrefix string

	// Framework overrides the per-file framework sniff for component scans.
	Framework string

	// Concurrency bounds the worker pool; 0 picks a size from CPU count.
	Concurrency int
}

func (c Config) validate() error {
	if c.ProjectRoot == "" && len(c.Files) == 0 {
		return fmt.Errorf("%w: ProjectRoot or Files must be set", ErrInvalidConfig)
	}
	return nil
}

// Stats summarizes one scan.
type Stats struct {
	FilesScanned int   `json:"filesScanned"`
	ItemsFound   int   `json:"itemsFound"`
	DurationMs   int64 `json:"durationMs"`
}

// TokenResult is the output of ScanTokens.
type TokenResult struct {
	Items      []token.DesignToken `json:"items"`
	Signals    []signal.RawSignal  `json:"signals,omitempty"`
	Errors     []FileError         `json:"errors,omitempty"`
	Stats      Stats               `json:"stats"`
	CacheStats *cache.Stats        `json:"cacheStats,omitempty"`
}

// ComponentResult is the output of ScanComponents.
type ComponentResult struct {
	Items      []component.Component `json:"items"`
	Signals    []signal.RawSignal    `json:"signals,omitempty"`
	Errors     []FileError           `json:"errors,omitempty"`
	Stats      Stats                 `json:"stats"`
	CacheStats *cache.Stats          `json:"cacheStats,omitempty"`
}

// Engine runs scans. The cache is optional; a nil store disables caching
// without changing any result semantics.
type Engine struct {
	parsers *parser.Manager
	cache   *cache.Store
	log     *slog.Logger
}

func NewEngine(pm *parser.Manager, store *cache.Store, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{parsers: pm, cache: store, log: log}
}

// fileOutcome is one file's contribution, indexed by submission order so the
// merge stays deterministic under parallel completion.
type fileOutcome[T any] struct {
	items   []T
	scanned bool
	err     *FileError
}

// ScanTokens extracts design tokens from CSS, SCSS, JSON, and TS/JS sources.
func (e *Engine) ScanTokens(ctx context.Context, cfg Config) (*TokenResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	files := uniquePaths(cfg.Files)
	if len(files) == 0 {
		discovered, err := Discover(cfg.ProjectRoot, DefaultTokenGlobs, DefaultExcludes)
		if err != nil {
			return nil, err
		}
		files = discovered
	}

	outcomes := make([]fileOutcome[token.DesignToken], len(files))
	cached := e.checkCache(files, "tokens", func(raw json.RawMessage) (any, error) {
		var items []token.DesignToken
		err := json.Unmarshal(raw, &items)
		return items, err
	})

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(util.PoolSize(cfg.Concurrency))
	for i, path := range files {
		if items, ok := cached[path]; ok {
			outcomes[i] = fileOutcome[token.DesignToken]{items: items.([]token.DesignToken), scanned: true}
			continue
		}
		grp.Go(func() error {
			if grpCtx.Err() != nil {
				return grpCtx.Err()
			}
			outcomes[i] = e.scanTokenFile(path, cfg.CSSVariablePrefix)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	result := &TokenResult{}
	agg := signal.NewAggregator()
	dedup := make(map[string]struct{})
	for i, outcome := range outcomes {
		if outcome.err != nil {
			result.Errors = append(result.Errors, *outcome.err)
		} else {
			e.storeCache(files[i], "tokens", outcome.items, outcome.scanned, cached)
		}
		if outcome.scanned {
			result.Stats.FilesScanned++
		}
		em := signal.NewEmitter(files[i])
		for _, tok := range outcome.items {
			if _, ok := dedup[tok.ID]; ok {
				continue
			}
			dedup[tok.ID] = struct{}{}
			result.Items = append(result.Items, tok)
			em.Emit("token", tok.Name, tok.Source.Line, string(tok.Category), map[string]string{"value": tok.Value.String()})
		}
		agg.Merge(em)
	}

	result.Signals = agg.All()
	result.Stats.ItemsFound = len(result.Items)
	result.Stats.DurationMs = time.Since(start).Milliseconds()
	result.CacheStats = e.cacheStats()
	e.log.Info("token scan finished",
		"files", result.Stats.FilesScanned,
		"tokens", result.Stats.ItemsFound,
		"errors", len(result.Errors),
		"durationMs", result.Stats.DurationMs)
	return result, nil
}

// ScanComponents extracts web components from TS/JS sources.
func (e *Engine) ScanComponents(ctx context.Context, cfg Config) (*ComponentResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	files := uniquePaths(cfg.Files)
	if len(files) == 0 {
		discovered, err := Discover(cfg.ProjectRoot, DefaultComponentGlobs, DefaultExcludes)
		if err != nil {
			return nil, err
		}
		files = discovered
	}

	detector := component.NewDetector(e.parsers, e.log)
	hint := component.Framework(cfg.Framework)

	outcomes := make([]fileOutcome[component.Component], len(files))
	cached := e.checkCache(files, "components", func(raw json.RawMessage) (any, error) {
		var items []component.Component
		err := json.Unmarshal(raw, &items)
		return items, err
	})

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(util.PoolSize(cfg.Concurrency))
	for i, path := range files {
		if items, ok := cached[path]; ok {
			outcomes[i] = fileOutcome[component.Component]{items: items.([]component.Component), scanned: true}
			continue
		}
		grp.Go(func() error {
			if grpCtx.Err() != nil {
				return grpCtx.Err()
			}
			outcomes[i] = e.scanComponentFile(detector, path, hint)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	result := &ComponentResult{}
	agg := signal.NewAggregator()
	dedup := make(map[string]struct{})
	for i, outcome := range outcomes {
		if outcome.err != nil {
			result.Errors = append(result.Errors, *outcome.err)
		} else {
			e.storeCache(files[i], "components", outcome.items, outcome.scanned, cached)
		}
		if outcome.scanned {
			result.Stats.FilesScanned++
		}
		em := signal.NewEmitter(files[i])
		for _, comp := range outcome.items {
			if _, ok := dedup[comp.ID]; ok {
				continue
			}
			dedup[comp.ID] = struct{}{}
			result.Items = append(result.Items, comp)
			em.Emit("component", comp.Name, comp.Source.Line, string(comp.Source.Framework), map[string]string{"tag": comp.Source.TagName})
		}
		agg.Merge(em)
	}

	result.Signals = agg.All()
	result.Stats.ItemsFound = len(result.Items)
	result.Stats.DurationMs = time.Since(start).Milliseconds()
	result.CacheStats = e.cacheStats()
	e.log.Info("component scan finished",
		"files", result.Stats.FilesScanned,
		"components", result.Stats.ItemsFound,
		"errors", len(result.Errors),
		"durationMs", result.Stats.DurationMs)
	return result, nil
}

func (e *Engine) scanTokenFile(path, cssPrefix string) fileOutcome[token.DesignToken] {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".css", ".scss", ".sass", ".json", ".ts", ".tsx", ".js", ".jsx":
	default:
		// Not a token source; nothing to open.
		return fileOutcome[token.DesignToken]{}
	}

	data, closeFn, err := util.ReadFileMapped(path)
	if err != nil {
		return fileOutcome[token.DesignToken]{err: &FileError{File: path, Message: err.Error(), Code: errorCode(path)}}
	}
	defer closeFn() //nolint:errcheck

	var (
		items   []token.DesignToken
		scanErr error
	)
	switch ext {
	case ".css", ".scss", ".sass":
		items = token.ExtractCSS(path, string(data), cssPrefix)
	case ".json":
		items, scanErr = token.ExtractJSON(path, data)
	default:
		items, scanErr = token.ExtractTypeScript(path, data, e.parsers)
	}
	if scanErr != nil {
		return fileOutcome[token.DesignToken]{scanned: true, err: &FileError{File: path, Message: scanErr.Error(), Code: errorCode(path)}}
	}
	return fileOutcome[token.DesignToken]{items: items, scanned: true}
}

func (e *Engine) scanComponentFile(detector *component.Detector, path string, hint component.Framework) fileOutcome[component.Component] {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".js", ".jsx":
	default:
		return fileOutcome[component.Component]{}
	}

	data, closeFn, err := util.ReadFileMapped(path)
	if err != nil {
		return fileOutcome[component.Component]{err: &FileError{File: path, Message: err.Error(), Code: errorCode(path)}}
	}
	defer closeFn() //nolint:errcheck

	items, err := detector.DetectFile(path, data, hint)
	if err != nil {
		return fileOutcome[component.Component]{scanned: true, err: &FileError{File: path, Message: err.Error(), Code: errorCode(path)}}
	}
	return fileOutcome[component.Component]{items: items, scanned: true}
}

// checkCache resolves cache hits up front. Entries that fail to deserialize
// are dropped so the file re-scans; a corrupt cache entry is just a miss.
func (e *Engine) checkCache(files []string, sourceType string, decode func(json.RawMessage) (any, error)) map[string]any {
	if e.cache == nil {
		return nil
	}
	e.cache.ResetStats()
	out := make(map[string]any)
	_, results := e.cache.CheckFiles(files, sourceType)
	for _, res := range results {
		items, err := decode(res.Items)
		if err != nil {
			e.log.Warn("dropping corrupt cache entry", "path", res.Path, "error", err)
			continue
		}
		out[res.Path] = items
	}
	return out
}

// storeCache writes a freshly scanned file's items back to the cache.
func (e *Engine) storeCache(path, sourceType string, items any, scanned bool, cached map[string]any) {
	if e.cache == nil || !scanned {
		return
	}
	if _, wasHit := cached[path]; wasHit {
		return
	}
	if err := e.cache.StoreResult(path, sourceType, items); err != nil {
		e.log.Debug("cache store failed", "path", path, "error", err)
	}
}

// uniquePaths drops repeated submissions while keeping first-seen order, so
// stats count distinct files and no file is opened twice.
func uniquePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, path := range paths {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	return out
}

func (e *Engine) cacheStats() *cache.Stats {
	if e.cache == nil {
		return nil
	}
	stats := e.cache.Stats()
	return &stats
}
