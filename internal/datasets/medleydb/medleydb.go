// Package medleydb loads the MedleyDB-Melody dataset: royalty-free multitrack
// recordings with three melody f0 annotation variants per song. Access to the
// archive must be requested on Zenodo, so there are no downloadable artifacts.
package medleydb

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"mirkit/internal/annotations"
	"mirkit/internal/datasets"
	"mirkit/internal/download"
	"mirkit/internal/index"
	"mirkit/internal/logging"
	"mirkit/internal/metadata"
)

//go:embed medleydb_melody_index.json
var indexData []byte

const (
	dirName      = "MedleyDB-Melody"
	metadataFile = "medleydb_melody_metadata.json"
)

// Record is the reconciled metadata for one song. Pointer fields are nil when
// the metadata file is absent.
type Record struct {
	Artist         string `json:"artist"`
	Title          string `json:"title"`
	Genre          string `json:"genre"`
	IsExcerpt      *bool  `json:"is_excerpt"`
	IsInstrumental *bool  `json:"is_instrumental"`
	SourceCount    *int   `json:"n_sources"`
}

// Track is the per-song view: resolved paths, metadata, and the lazily parsed
// melody annotations.
type Track struct {
	TrackID     string
	AudioPath   string
	Melody1Path string
	Melody2Path string
	Melody3Path string
	HasMetadata bool
	Metadata    Record

	melody1 datasets.Lazy[*annotations.Melody]
	melody2 datasets.Lazy[*annotations.Melody]
	melody3 datasets.Lazy[*annotations.MultiMelody]
}

// Melody1 parses the lead-voice melody annotation, at most once per Track.
func (t *Track) Melody1() (*annotations.Melody, error) {
	return t.melody1.Load(func() (*annotations.Melody, error) {
		return annotations.LoadMelody(t.Melody1Path, ',')
	})
}

// Melody2 parses the predominant-source melody annotation.
func (t *Track) Melody2() (*annotations.Melody, error) {
	return t.melody2.Load(func() (*annotations.Melody, error) {
		return annotations.LoadMelody(t.Melody2Path, ',')
	})
}

// Melody3 parses the multi-source melody annotation, where each frame may
// carry several simultaneous frequencies.
func (t *Track) Melody3() (*annotations.MultiMelody, error) {
	return t.melody3.Load(func() (*annotations.MultiMelody, error) {
		return annotations.LoadMultiMelody(t.Melody3Path)
	})
}

// Loader is the MedleyDB-Melody dataset loader.
type Loader struct {
	logger *slog.Logger
	idx    *index.Index
	cache  metadata.Cache[Record]
}

// New constructs a loader. A nil logger disables logging.
func New(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logging.NewComponentLogger(logger, "medleydb"),
		idx:    index.MustParse(indexData),
	}
}

func (l *Loader) Name() string  { return "medleydb_melody" }
func (l *Loader) Title() string { return "MedleyDB-Melody" }

// DirName returns the dataset directory under the data home.
func (l *Loader) DirName() string { return dirName }

// Index returns the packaged manifest.
func (l *Loader) Index() *index.Index { return l.idx }

// TrackIDs returns all track identifiers in sorted order.
func (l *Loader) TrackIDs() []string { return l.idx.TrackIDs() }

// Remotes returns nil; the dataset is gated behind an access request.
func (l *Loader) Remotes() []download.RemoteFile { return nil }

// PostDownload is a no-op.
func (l *Loader) PostDownload(dataRoot string) error { return nil }

// DownloadInstructions explains how to obtain the dataset from Zenodo.
func (l *Loader) DownloadInstructions() string {
	return `To obtain this dataset, visit
https://zenodo.org/record/2628782 and request access.
Once granted, unzip MedleyDB-Melody.zip into the data home so the
contents live under MedleyDB-Melody/.`
}

// Track builds the view for one song. The identifier must exist in the index;
// absent metadata yields a placeholder record, never an error.
func (l *Loader) Track(id, dataRoot string) (*Track, error) {
	if _, err := l.idx.Track(id); err != nil {
		return nil, err
	}

	track := &Track{TrackID: id}
	if ref, ok := l.idx.First(id, "audio"); ok {
		track.AudioPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "melody1"); ok {
		track.Melody1Path = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "melody2"); ok {
		track.Melody2Path = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "melody3"); ok {
		track.Melody3Path = filepath.Join(dataRoot, ref.Path)
	}

	table, err := l.cache.Get(dataRoot, l.buildTable)
	if err != nil {
		return nil, err
	}
	if record, ok := table[id]; ok {
		track.Metadata = record
		track.HasMetadata = true
	}
	return track, nil
}

// LoadAll builds every track in the index.
func (l *Loader) LoadAll(dataRoot string) (map[string]*Track, error) {
	tracks := make(map[string]*Track, l.idx.Len())
	for _, id := range l.idx.TrackIDs() {
		track, err := l.Track(id, dataRoot)
		if err != nil {
			return nil, err
		}
		tracks[id] = track
	}
	return tracks, nil
}

// buildTable parses the metadata JSON shipped inside the archive. Track
// identifiers are the JSON object keys; no normalization is needed.
func (l *Loader) buildTable(dataRoot string) (map[string]Record, error) {
	path := filepath.Join(dataRoot, metadataFile)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("metadata file not found, using placeholder records",
				logging.String(logging.FieldPath, path))
			return nil, nil
		}
		return nil, fmt.Errorf("read metadata file: %w", err)
	}

	var table map[string]Record
	if err := json.Unmarshal(content, &table); err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	return table, nil
}
