// Package testsupport provides shared fixtures for dataset tests: writing
// files with known checksums and materializing index-described trees.
package testsupport

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mirkit/internal/config"
	"mirkit/internal/index"
)

// WriteFile writes content to path, creating parent directories, and returns
// the MD5 hex digest of the content.
func WriteFile(t testing.TB, path string, content []byte) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// MaterializeIndex writes a file under dataRoot for every reference in idx.
// Each file's content is its own relative path, matching the checksum rule
// used by BuildIndexJSON, so the resulting tree validates clean.
func MaterializeIndex(t testing.TB, idx *index.Index, dataRoot string) {
	t.Helper()

	for _, ref := range idx.Files() {
		WriteFile(t, filepath.Join(dataRoot, ref.Path), []byte(ref.Path))
	}
}

// BuildIndexJSON constructs index JSON from track -> role -> relative paths,
// recording for each file the checksum of its own relative path as content.
// Paired with MaterializeIndex this yields a tree that validates clean.
func BuildIndexJSON(t testing.TB, tracks map[string]map[string][]string) []byte {
	t.Helper()

	raw := make(map[string]map[string][][2]string, len(tracks))
	for id, roles := range tracks {
		entry := make(map[string][][2]string, len(roles))
		for role, paths := range roles {
			pairs := make([][2]string, 0, len(paths))
			for _, p := range paths {
				pairs = append(pairs, [2]string{p, Checksum([]byte(p))})
			}
			entry[role] = pairs
		}
		raw[id] = entry
	}
	data, err := json.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal index: %v", err)
	}
	return data
}

// Checksum returns the MD5 hex digest of content without touching disk.
func Checksum(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataHome = filepath.Join(base, "mir_datasets")
	cfg.Paths.ReportDBPath = filepath.Join(base, "reports.db")
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "error"
	return &cfg
}
