package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/driftlens/driftlens/pkg/util"
)

type poolKey struct {
	lang  Language
	isTSX bool
}

// Manager owns per-language parser pools, created lazily. Safe for
// concurrent use; callers own returned trees and must Close() them.
type Manager struct {
	mu    sync.RWMutex
	pools map[poolKey]*pool
	log   *slog.Logger
}

// NewManager creates a Manager. Close() must be called to free parsers.
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		pools: make(map[poolKey]*pool),
		log:   log,
	}
}

// Parse parses source with the given grammar. The returned tree must be
// closed by the caller. Trees containing syntax errors are still returned;
// partial trees are useful for heuristic extraction.
func (m *Manager) Parse(source []byte, lang Language, isTSX bool) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("cannot parse unknown language")
	}

	p, err := m.getOrCreatePool(lang, isTSX)
	if err != nil {
		return nil, err
	}

	parser, err := p.acquire()
	if err != nil {
		return nil, err
	}
	tree := parser.Parse(source, nil)
	p.release(parser)

	if tree == nil {
		return nil, fmt.Errorf("parser returned nil tree")
	}
	if tree.RootNode().HasError() {
		m.log.Debug("parse tree contains errors", "language", lang.String())
	}
	return tree, nil
}

// ParseFile parses source, detecting the grammar from the file path.
func (m *Manager) ParseFile(source []byte, path string) (*ts.Tree, error) {
	lang := DetectLanguage(path)
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("unsupported file extension: %s", path)
	}
	return m.Parse(source, lang, IsTSX(path))
}

// Close releases every pooled parser. The Manager is unusable afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pools {
		p.close()
	}
	m.pools = make(map[poolKey]*pool)
}

func (m *Manager) getOrCreatePool(lang Language, isTSX bool) (*pool, error) {
	key := poolKey{lang: lang, isTSX: isTSX}

	m.mu.RLock()
	p, ok := m.pools[key]
	m.mu.RUnlock()
	if ok {
		return p, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok = m.pools[key]; ok {
		return p, nil
	}

	langPtr, err := languagePointer(lang, isTSX)
	if err != nil {
		return nil, err
	}
	p = newPool(lang, langPtr, util.OptimalPoolSize(), m.log)
	m.pools[key] = p
	return p, nil
}

func languagePointer(lang Language, isTSX bool) (unsafe.Pointer, error) {
	switch lang {
	case LanguageTypeScript:
		if isTSX {
			return ts_typescript.LanguageTSX(), nil
		}
		return ts_typescript.LanguageTypescript(), nil
	case LanguageJavaScript:
		return ts_javascript.Language(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
}
