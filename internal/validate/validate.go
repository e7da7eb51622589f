package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mirkit/internal/fileutil"
	"mirkit/internal/index"
)

// Result reports the discrepancy sets of one validation pass. Paths are
// relative to the data root and sorted in index iteration order. Empty slices
// mean a clean dataset.
type Result struct {
	Missing          []string
	InvalidChecksums []string
}

// Clean reports whether the pass found no discrepancies.
func (r Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.InvalidChecksums) == 0
}

// Dataset verifies every index-referenced file under dataRoot. The root is
// not required to exist; a fully absent root simply reports every file as
// missing. Existence is always checked before hashing so a nonexistent file
// is never opened. Only unexpected I/O failures (a file that exists but
// cannot be read) surface as an error.
func Dataset(idx *index.Index, dataRoot string) (Result, error) {
	var result Result
	for _, ref := range idx.Files() {
		full := filepath.Join(dataRoot, ref.Path)

		info, err := os.Stat(full)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.Missing = append(result.Missing, ref.Path)
				continue
			}
			return Result{}, fmt.Errorf("stat %s: %w", full, err)
		}
		if info.IsDir() {
			result.Missing = append(result.Missing, ref.Path)
			continue
		}

		sum, err := fileutil.MD5File(full)
		if err != nil {
			return Result{}, err
		}
		if sum != ref.Checksum {
			result.InvalidChecksums = append(result.InvalidChecksums, ref.Path)
		}
	}
	return result, nil
}
