package spatialtree

import "errors"

// Sentinel errors returned synchronously by tree operations. The tree is
// left unmodified whenever one of these is returned.
var (
	// ErrInvalidRect is returned when a rectangle's min corner lies above
	// or to the right of its max corner.
	ErrInvalidRect = errors.New("spatialtree: invalid rectangle: min must not exceed max")

	// ErrMaxEntries is returned by New when maxEntries < 2.
	ErrMaxEntries = errors.New("spatialtree: maxEntries must be >= 2")

	// ErrNilData is returned by Insert when data is nil.
	ErrNilData = errors.New("spatialtree: data must not be nil")

	// ErrUnknownSplitAlgorithm is returned by New for an unrecognized
	// SplitAlgorithm value.
	ErrUnknownSplitAlgorithm = errors.New("spatialtree: unknown split algorithm")

	// ErrCorruptStream is returned by Load when the persisted stream is
	// missing its root or otherwise malformed.
	ErrCorruptStream = errors.New("spatialtree: corrupt or incomplete persisted tree")
)
