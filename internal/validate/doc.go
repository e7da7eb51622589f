// Package validate checks a local dataset tree against its index manifest.
//
// Validation is a single read-only pass: every file the index references is
// stat'ed under the data root and, when present, streamed through MD5 and
// compared with the manifest checksum. Discrepancies come back as a Result
// rather than errors so callers can decide whether to log, re-download, or
// continue with a partial dataset.
package validate
