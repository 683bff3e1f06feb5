// Package signal collects lightweight observations emitted while scanning.
// Each file produces its own Emitter; emitters are merged into a single
// Aggregator that deduplicates by ID and supports filtering by type. Signals
// live for one scan and feed the downstream drift comparator.
package signal

import "github.com/driftlens/driftlens/pkg/ident"

// Location identifies where in the tree a signal was observed.
type Location struct {
	Path string `json:"path"`
	Line int    `json:"line"`
}

// RawSignal is a single observation: a token value, a component definition,
// or anything else the drift comparator may want to inspect.
type RawSignal struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Value    string            `json:"value"`
	Location Location          `json:"location"`
	Context  string            `json:"context,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Emitter accumulates signals for a single file during scanning.
type Emitter struct {
	path    string
	signals []RawSignal
}

// NewEmitter creates an emitter for the given file path.
func NewEmitter(path string) *Emitter {
	return &Emitter{path: path}
}

// Emit records one observation. The ID is derived from (type, path, value) so
// repeated observations of the same fact collapse during aggregation.
func (e *Emitter) Emit(signalType, value string, line int, context string, metadata map[string]string) {
	e.signals = append(e.signals, RawSignal{
		ID:       ident.SignalID(signalType, e.path, value),
		Type:     signalType,
		Value:    value,
		Location: Location{Path: e.path, Line: line},
		Context:  context,
		Metadata: metadata,
	})
}

// Signals returns everything emitted so far, in emission order.
func (e *Emitter) Signals() []RawSignal {
	return e.signals
}

// Aggregator merges per-file emitters into one deduplicated collection.
// Not safe for concurrent use; the scan engine merges single-threaded.
type Aggregator struct {
	byID  map[string]struct{}
	order []RawSignal
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{byID: make(map[string]struct{})}
}

// Merge folds an emitter's signals in. The first signal with a given ID wins;
// later duplicates are dropped.
func (a *Aggregator) Merge(e *Emitter) {
	if e == nil {
		return
	}
	for _, s := range e.signals {
		if _, ok := a.byID[s.ID]; ok {
			continue
		}
		a.byID[s.ID] = struct{}{}
		a.order = append(a.order, s)
	}
}

// All returns every aggregated signal in merge order.
func (a *Aggregator) All() []RawSignal {
	return a.order
}

// ByType returns the aggregated signals matching signalType.
func (a *Aggregator) ByType(signalType string) []RawSignal {
	var out []RawSignal
	for _, s := range a.order {
		if s.Type == signalType {
			out = append(out, s)
		}
	}
	return out
}

// Len reports the number of distinct signals collected.
func (a *Aggregator) Len() int {
	return len(a.order)
}
