// Package orchset loads the Orchset dataset: 64 symphonic music excerpts
// with melody annotations, built for melody extraction research.
package orchset

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mirkit/internal/annotations"
	"mirkit/internal/datasets"
	"mirkit/internal/download"
	"mirkit/internal/index"
	"mirkit/internal/logging"
	"mirkit/internal/metadata"
)

//go:embed orchset_index.json
var indexData []byte

const (
	dirName      = "Orchset"
	metadataFile = "Orchset - Predominant Melodic Instruments.csv"
)

var remote = download.RemoteFile{
	Name:     "Orchset_dataset_0.zip",
	URL:      "https://zenodo.org/record/1289786/files/Orchset_dataset_0.zip?download=1",
	Checksum: "cf6fe52d64624f61ee116c752fb318ca",
	Kind:     download.KindZip,
}

// Canonical spellings for instrument tokens as they appear in the metadata
// table.
var canonicalInstruments = map[string]string{
	"string":       "strings",
	"winds (solo)": "winds",
}

// Record is the reconciled metadata for one excerpt. Boolean pointers are nil
// and string/slice fields empty when the metadata table is absent.
type Record struct {
	Composer                         string
	Work                             string
	Excerpt                          string
	PredominantMelodicInstrumentsRaw string
	PredominantMelodicInstruments    []string
	AlternatingMelody                *bool
	ContainsWinds                    *bool
	ContainsStrings                  *bool
	ContainsBrass                    *bool
	OnlyStrings                      *bool
	OnlyWinds                        *bool
	OnlyBrass                        *bool
}

// Track is the per-excerpt view: resolved paths, metadata, and the lazily
// parsed melody contour.
type Track struct {
	TrackID         string
	AudioMonoPath   string
	AudioStereoPath string
	MelodyPath      string
	HasMetadata     bool
	Metadata        Record

	melody datasets.Lazy[*annotations.Melody]
}

// Melody parses the excerpt's melody contour, at most once per Track.
func (t *Track) Melody() (*annotations.Melody, error) {
	return t.melody.Load(func() (*annotations.Melody, error) {
		return annotations.LoadMelody(t.MelodyPath, '\t')
	})
}

// Loader is the Orchset dataset loader. It owns the single-slot metadata
// cache, so independent loaders never share reconciliation state.
type Loader struct {
	logger *slog.Logger
	idx    *index.Index
	cache  metadata.Cache[Record]
}

// New constructs a loader. A nil logger disables logging.
func New(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logging.NewComponentLogger(logger, "orchset"),
		idx:    index.MustParse(indexData),
	}
}

func (l *Loader) Name() string  { return "orchset" }
func (l *Loader) Title() string { return "Orchset" }

// DirName returns the dataset directory under the data home.
func (l *Loader) DirName() string { return dirName }

// Index returns the packaged manifest.
func (l *Loader) Index() *index.Index { return l.idx }

// TrackIDs returns all track identifiers in sorted order.
func (l *Loader) TrackIDs() []string { return l.idx.TrackIDs() }

// Remotes lists the downloadable artifacts.
func (l *Loader) Remotes() []download.RemoteFile { return []download.RemoteFile{remote} }

// DownloadInstructions returns "" — Orchset downloads fully.
func (l *Loader) DownloadInstructions() string { return "" }

// PostDownload flattens the duplicated Orchset/ directory the archive
// extracts to, moving its contents up into the data root.
func (l *Loader) PostDownload(dataRoot string) error {
	nested := filepath.Join(dataRoot, dirName)
	entries, err := os.ReadDir(nested)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read extracted directory: %w", err)
	}
	for _, entry := range entries {
		src := filepath.Join(nested, entry.Name())
		dst := filepath.Join(dataRoot, entry.Name())
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("flatten %s: %w", src, err)
		}
	}
	if err := os.Remove(nested); err != nil {
		return fmt.Errorf("remove duplicated directory: %w", err)
	}
	return nil
}

// Track builds the view for one excerpt. The identifier must exist in the
// index; absent metadata yields a placeholder record, never an error.
func (l *Loader) Track(id, dataRoot string) (*Track, error) {
	if _, err := l.idx.Track(id); err != nil {
		return nil, err
	}

	track := &Track{TrackID: id}
	if ref, ok := l.idx.First(id, "audio_mono"); ok {
		track.AudioMonoPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "audio_stereo"); ok {
		track.AudioStereoPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "melody"); ok {
		track.MelodyPath = filepath.Join(dataRoot, ref.Path)
	}

	table, err := l.reconcile(dataRoot)
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

// reconcile parses the predominant-instruments table under dataRoot,
// memoized per root. A missing table yields a nil mapping.
func (l *Loader) reconcile(dataRoot string) (map[string]Record, error) {
	return l.cache.Get(dataRoot, l.buildTable)
}

func (l *Loader) buildTable(dataRoot string) (map[string]Record, error) {
	path := filepath.Join(dataRoot, metadataFile)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("metadata file not found, using placeholder records",
				logging.String(logging.FieldPath, path))
			return nil, nil
		}
		return nil, fmt.Errorf("open metadata file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 9

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}

	table := make(map[string]Record)
	for _, row := range rows {
		if row[0] == "excerpt" {
			continue // header
		}
		id := normalizeID(row[0])
		composer, work, excerpt := splitID(id)

		record := Record{
			Composer:                         composer,
			Work:                             work,
			Excerpt:                          excerpt,
			PredominantMelodicInstrumentsRaw: row[1],
			PredominantMelodicInstruments:    metadata.NormalizeTokens(row[1], canonicalInstruments),
		}
		flags := []struct {
			value string
			dest  **bool
		}{
			{row[2], &record.AlternatingMelody},
			{row[3], &record.ContainsWinds},
			{row[4], &record.ContainsStrings},
			{row[5], &record.ContainsBrass},
			{row[6], &record.OnlyStrings},
			{row[7], &record.OnlyWinds},
			{row[8], &record.OnlyBrass},
		}
		for _, flag := range flags {
			parsed, err := metadata.ParseBool(flag.value)
			if err != nil {
				return nil, fmt.Errorf("metadata file %s, excerpt %s: %w", path, row[0], err)
			}
			value := parsed
			*flag.dest = &value
		}
		table[id] = record
	}
	return table, nil
}

// normalizeID derives the track identifier from the excerpt filename column
// by stripping the extension.
func normalizeID(excerpt string) string {
	if dot := strings.IndexByte(excerpt, '.'); dot >= 0 {
		return excerpt[:dot]
	}
	return excerpt
}

// splitID decomposes an identifier into composer, work, and excerpt number.
// Musorgski and Rimski are the two multi-token composer names in the corpus;
// their second segment folds into the composer rather than the work. These
// special cases match the published reference table and must stay literal.
func splitID(id string) (composer, work, excerpt string) {
	segments := strings.Split(id, "-")
	if segments[0] == "Musorgski" || segments[0] == "Rimski" {
		if len(segments) > 1 {
			segments[0] = segments[0] + "-" + segments[1]
			segments = append(segments[:1], segments[2:]...)
		}
	}
	composer = segments[0]
	if len(segments) > 1 {
		work = strings.Join(segments[1:len(segments)-1], "-")
		last := segments[len(segments)-1]
		excerpt = strings.TrimPrefix(last, "ex")
	}
	return composer, work, excerpt
}
