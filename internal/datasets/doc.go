// Package datasets defines the uniform surface every dataset loader exposes
// to the CLI: identity, index, remote artifacts, per-track descriptions, and
// citation text. The typed per-dataset APIs (Track structs with typed
// metadata and annotations) live in the subpackages; this package carries
// only what generic tooling needs.
package datasets
