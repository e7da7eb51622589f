// Package metadata supports reconciling a dataset's optional auxiliary
// metadata table with its index.
//
// Each dataset parses its own table format and normalizes its own identifier
// scheme; this package owns the pieces those loaders share: the single-slot
// cache that memoizes one reconciled table per data root, and the value
// normalization helpers for boolean text fields and multi-valued instrument
// lists.
//
// An absent metadata source is a normal condition, not an error. Loaders
// represent it as a nil table and substitute placeholder records per track.
package metadata
