// Package ident derives deterministic identifiers for extracted records.
// An ID is a pure function of (source discriminator, file path, name), so the
// same declaration always hashes to the same ID across runs and machines.
package ident

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// TokenID returns the deterministic ID for a design token discovered in the
// given source kind ("json", "css", "typescript") at path under name.
func TokenID(sourceKind, path, name string) string {
	return "tok_" + digest(sourceKind, path, name)
}

// ComponentID returns the deterministic ID for a component declared in path
// under exportName.
func ComponentID(path, exportName string) string {
	return "cmp_" + digest("component", path, exportName)
}

// SignalID returns the deterministic ID for a raw drift signal.
func SignalID(signalType, path, value string) string {
	return "sig_" + digest(signalType, path, value)
}

func digest(parts ...string) string {
	h := xxhash.New()
	for _, p := range parts {
		// NUL separator keeps ("a","bc") distinct from ("ab","c").
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
