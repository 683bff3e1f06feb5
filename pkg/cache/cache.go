// Package cache provides a content-addressed result store for scan output.
// Keys combine the source type, file path, and a hash of the file content,
// so an edited file naturally misses and gets re-scanned.
package cache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/driftlens/driftlens/pkg/util"
)

// DefaultSize bounds the number of cached file results.
const DefaultSize = 4096

// Stats counts cache effectiveness for one scan.
type Stats struct {
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
}

// Result is a cached per-file extraction. Items is stored serialized; the
// caller deserializes into its own item type and treats failure as a miss.
type Result struct {
	Path  string
	Items json.RawMessage
}

// Store is a bounded in-memory cache of per-file scan results. Safe for
// concurrent use.
type Store struct {
	entries *lru.Cache[string, json.RawMessage]

	mu    sync.Mutex
	stats Stats
}

// New creates a Store holding at most size file results; size <= 0 uses
// DefaultSize.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, json.RawMessage](size)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	return &Store{entries: entries}, nil
}

// CheckFiles partitions paths into files that need scanning and files whose
// current content already has a cached result. Unreadable files land in
// toScan so the scanner surfaces the read error itself.
func (s *Store) CheckFiles(paths []string, sourceType string) (toScan []string, cached []Result) {
	for _, path := range paths {
		key, err := s.key(path, sourceType)
		if err != nil {
			toScan = append(toScan, path)
			s.miss()
			continue
		}
		items, ok := s.entries.Get(key)
		if !ok {
			toScan = append(toScan, path)
			s.miss()
			continue
		}
		cached = append(cached, Result{Path: path, Items: items})
		s.hit()
	}
	return toScan, cached
}

// StoreResult records the extraction output for a file's current content.
func (s *Store) StoreResult(path, sourceType string, items any) error {
	key, err := s.key(path, sourceType)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializing cache entry for %s: %w", path, err)
	}
	s.entries.Add(key, raw)
	return nil
}

// Drop evicts any entry for the file's current content. Used by the watcher
// when a change event fires before the re-scan.
func (s *Store) Drop(path, sourceType string) {
	if key, err := s.key(path, sourceType); err == nil {
		s.entries.Remove(key)
	}
}

// Stats returns the hit/miss counters accumulated so far.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ResetStats zeroes the counters, typically between scans.
func (s *Store) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = Stats{}
}

func (s *Store) key(path, sourceType string) (string, error) {
	data, closeFn, err := util.ReadFileMapped(path)
	if err != nil {
		return "", err
	}
	sum := xxhash.Sum64(data)
	if closeErr := closeFn(); closeErr != nil {
		return "", closeErr
	}
	return sourceType + "\x00" + path + "\x00" + strconv.FormatUint(sum, 16), nil
}

func (s *Store) hit() {
	s.mu.Lock()
	s.stats.Hits++
	s.mu.Unlock()
}

func (s *Store) miss() {
	s.mu.Lock()
	s.stats.Misses++
	s.mu.Unlock()
}
