// Package reportstore persists validation run history in SQLite.
//
// Each validation pass the CLI performs is recorded as a row: a unique run
// ID, the dataset and data root it covered, file counts, and the missing and
// corrupt path lists as JSON. The store is an operational convenience for
// comparing runs over time; the validator itself never depends on it.
package reportstore
