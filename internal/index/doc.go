// Package index models the static manifest that defines a dataset: every
// track identifier, the files that constitute it grouped by role (audio,
// beats, melody, ...), and the expected MD5 checksum of each file.
//
// Indexes are produced offline, shipped as JSON resources embedded in the
// dataset packages, and are immutable once parsed. Iteration order over track
// identifiers is always sorted so validation reports are reproducible.
package index
