package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrTrackNotFound reports a track identifier that is absent from an index.
// Callers are expected to check TrackIDs or Has before constructing tracks;
// hitting this error is a programming mistake, not a data problem.
var ErrTrackNotFound = errors.New("track id not found in index")

// FileRef locates one file of a track: its path relative to the dataset root
// and the MD5 checksum recorded when the index was built.
type FileRef struct {
	Path     string
	Checksum string
}

// Index is an immutable manifest mapping track identifiers to their files.
type Index struct {
	tracks map[string]map[string][]FileRef
	ids    []string
}

// Parse decodes an index from its JSON resource form:
//
//	{"track-id": {"role": [["relative/path", "md5hex"], ...]}}
func Parse(data []byte) (*Index, error) {
	var raw map[string]map[string][][2]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	tracks := make(map[string]map[string][]FileRef, len(raw))
	ids := make([]string, 0, len(raw))
	for id, roles := range raw {
		entry := make(map[string][]FileRef, len(roles))
		for role, pairs := range roles {
			refs := make([]FileRef, 0, len(pairs))
			for _, pair := range pairs {
				if pair[0] == "" {
					return nil, fmt.Errorf("parse index: track %q role %q has an empty path", id, role)
				}
				refs = append(refs, FileRef{Path: pair[0], Checksum: pair[1]})
			}
			entry[role] = refs
		}
		tracks[id] = entry
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Index{tracks: tracks, ids: ids}, nil
}

// MustParse parses an embedded index resource and panics on failure. Only for
// use with go:embed data compiled into the binary.
func MustParse(data []byte) *Index {
	idx, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return idx
}

// TrackIDs returns all track identifiers in sorted order.
func (idx *Index) TrackIDs() []string {
	ids := make([]string, len(idx.ids))
	copy(ids, idx.ids)
	return ids
}

// Len returns the number of tracks in the index.
func (idx *Index) Len() int {
	return len(idx.ids)
}

// Has reports whether the identifier exists in the index.
func (idx *Index) Has(id string) bool {
	_, ok := idx.tracks[id]
	return ok
}

// Track returns the role-to-files mapping for id.
func (idx *Index) Track(id string) (map[string][]FileRef, error) {
	entry, ok := idx.tracks[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrTrackNotFound)
	}
	return entry, nil
}

// First returns the first file reference recorded for the given track role.
// Most roles reference exactly one file.
func (idx *Index) First(id, role string) (FileRef, bool) {
	entry, ok := idx.tracks[id]
	if !ok {
		return FileRef{}, false
	}
	refs, ok := entry[role]
	if !ok || len(refs) == 0 {
		return FileRef{}, false
	}
	return refs[0], true
}

// Files returns every file reference in the index in deterministic order:
// sorted by track identifier, then role, then recorded order.
func (idx *Index) Files() []FileRef {
	var refs []FileRef
	for _, id := range idx.ids {
		entry := idx.tracks[id]
		roles := make([]string, 0, len(entry))
		for role := range entry {
			roles = append(roles, role)
		}
		sort.Strings(roles)
		for _, role := range roles {
			refs = append(refs, entry[role]...)
		}
	}
	return refs
}
