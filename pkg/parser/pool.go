package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// pool hands out tree-sitter parsers for one grammar. Parsers are created
// lazily up to max; acquire blocks once the pool is exhausted. Channel-based
// so acquire/release need no locking on the hot path.
type pool struct {
	free    chan *ts.Parser
	langPtr unsafe.Pointer
	lang    Language
	max     int

	mu      sync.Mutex
	created int

	log *slog.Logger
}

func newPool(lang Language, langPtr unsafe.Pointer, max int, log *slog.Logger) *pool {
	return &pool{
		free:    make(chan *ts.Parser, max),
		langPtr: langPtr,
		lang:    lang,
		max:     max,
		log:     log,
	}
}

func (p *pool) acquire() (*ts.Parser, error) {
	select {
	case parser := <-p.free:
		return parser, nil
	default:
	}

	p.mu.Lock()
	if p.created < p.max {
		parser := ts.NewParser()
		if parser == nil {
			p.mu.Unlock()
			return nil, fmt.Errorf("tree-sitter parser allocation failed")
		}
		if err := parser.SetLanguage(ts.NewLanguage(p.langPtr)); err != nil {
			parser.Close()
			p.mu.Unlock()
			return nil, fmt.Errorf("set language %s: %w", p.lang, err)
		}
		p.created++
		p.mu.Unlock()
		return parser, nil
	}
	p.mu.Unlock()

	// All parsers busy; wait for one to come back.
	return <-p.free, nil
}

func (p *pool) release(parser *ts.Parser) {
	if parser == nil {
		return
	}
	select {
	case p.free <- parser:
	default:
		parser.Close()
		p.log.Warn("parser pool overflow, closing parser", "language", p.lang.String())
	}
}

func (p *pool) close() {
	close(p.free)
	for parser := range p.free {
		if parser != nil {
			parser.Close()
		}
	}
}
