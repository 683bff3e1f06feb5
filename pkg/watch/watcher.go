// Package watch re-runs scans when files under a project root change.
// Changes are debounced and always trigger a full re-scan rather than a
// per-file patch: first-wins deduplication is only deterministic when the
// whole file list is re-merged in submission order.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/driftlens/driftlens/pkg/scan"
)

// Options configures a Watcher.
type Options struct {
	// DebounceMs groups rapid change bursts into one re-scan. 0 means 200.
	DebounceMs int

	// Scan is the configuration re-used for every triggered scan. Its
	// ProjectRoot is also the watch root.
	Scan scan.Config

	// OnTokens and OnComponents receive fresh results after each re-scan.
	// A nil callback skips that scan kind entirely.
	OnTokens     func(*scan.TokenResult)
	OnComponents func(*scan.ComponentResult)
}

var ignoredDirs = map[string]struct{}{
	"node_modules": {},
	"dist":         {},
	"build":        {},
	".git":         {},
	"coverage":     {},
}

var watchedExts = map[string]struct{}{
	".css": {}, ".scss": {}, ".sass": {},
	".json": {},
	".ts":   {}, ".tsx": {}, ".js": {}, ".jsx": {},
}

// Watcher triggers engine scans on filesystem changes.
type Watcher struct {
	engine  *scan.Engine
	watcher *fsnotify.Watcher
	log     *slog.Logger
	opts    Options

	debounceMu sync.Mutex
	timer      *time.Timer

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
}

// New creates a Watcher. Start must be called to begin watching.
func New(engine *scan.Engine, opts Options, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.DebounceMs == 0 {
		opts.DebounceMs = 200
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	return &Watcher{
		engine:   engine,
		watcher:  fw,
		log:      log,
		opts:     opts,
		stopChan: make(chan struct{}),
	}, nil
}

// Start registers the project tree and begins processing events in a
// background goroutine.
func (w *Watcher) Start() error {
	root := w.opts.Scan.ProjectRoot
	if root == "" {
		return fmt.Errorf("watch requires Scan.ProjectRoot")
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if _, skip := ignoredDirs[info.Name()]; skip {
			return filepath.SkipDir
		}
		if addErr := w.watcher.Add(path); addErr != nil {
			w.log.Warn("failed to watch directory", "path", path, "error", addErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("registering watches under %s: %w", root, err)
	}

	w.log.Info("watching for changes", "root", root, "debounceMs", w.opts.DebounceMs)
	go w.eventLoop()
	return nil
}

// Stop shuts the watcher down. Idempotent.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.log.Info("watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// New directories need registering; files are filtered by extension.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if _, skip := ignoredDirs[info.Name()]; !skip {
				_ = w.watcher.Add(event.Name)
			}
			return
		}
	}
	if _, ok := watchedExts[strings.ToLower(filepath.Ext(event.Name))]; !ok {
		return
	}

	w.log.Debug("file event", "op", event.Op.String(), "file", event.Name)
	w.scheduleRescan()
}

func (w *Watcher) scheduleRescan() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(time.Duration(w.opts.DebounceMs)*time.Millisecond, w.rescan)
}

func (w *Watcher) rescan() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	ctx := context.Background()
	if w.opts.OnTokens != nil {
		res, err := w.engine.ScanTokens(ctx, w.opts.Scan)
		if err != nil {
			w.log.Error("token re-scan failed", "error", err)
		} else {
			w.opts.OnTokens(res)
		}
	}
	if w.opts.OnComponents != nil {
		res, err := w.engine.ScanComponents(ctx, w.opts.Scan)
		if err != nil {
			w.log.Error("component re-scan failed", "error", err)
		} else {
			w.opts.OnComponents(res)
		}
	}
}
