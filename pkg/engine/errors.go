package engine

import "errors"

// The five error kinds spec.md §7 requires at the public API. Each is a
// sentinel; callers test membership with errors.Is. Wrapped causes are
// attached with fmt.Errorf's %w so the chain of context strings survives
// (spec.md §7's "Propagation policy"). Of these, only ErrDecode is
// returned by this package (wrapping a decode failure in New); the errors
// returned by pkg/dictbuild, pkg/jagged and pkg/dictindex do not wrap
// these sentinels, so errors.Is against them reports false.
var (
	// ErrMalformedInput covers XML well-formedness problems, unexpected
	// tag order, or a missing required child during a dictionary build.
	ErrMalformedInput = errors.New("engine: malformed input")

	// ErrDecode covers a truncated binary artefact or a section-length
	// prefix inconsistent with the remaining bytes.
	ErrDecode = errors.New("engine: decode error")

	// ErrOutOfRange covers a jagged-array index at or beyond the array's
	// count. Never surfaced at the public API in well-formed use; its
	// presence indicates a bug in the caller or a corrupt artefact.
	ErrOutOfRange = errors.New("engine: out of range")

	// ErrNotFound covers a term referenced from a single-key lookup with
	// no corresponding entry. Set-oriented operations (Search, term
	// index range queries) return empty instead of this error.
	ErrNotFound = errors.New("engine: not found")

	// ErrIO covers an underlying reader/writer failure during a
	// dictionary build.
	ErrIO = errors.New("engine: io error")
)
