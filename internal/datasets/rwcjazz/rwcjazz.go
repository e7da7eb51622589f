// Package rwcjazz loads the RWC Jazz database: 50 jazz recordings with AIST
// beat and chorus-section annotations. The audio itself is distributed on
// physical media and cannot be downloaded.
package rwcjazz

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mirkit/internal/annotations"
	"mirkit/internal/datasets"
	"mirkit/internal/download"
	"mirkit/internal/index"
	"mirkit/internal/logging"
	"mirkit/internal/metadata"
)

//go:embed rwc_jazz_index.json
var indexData []byte

const (
	dirName      = "RWC-Jazz"
	metadataFile = "metadata-master/rwc-j.csv"
)

var remotes = []download.RemoteFile{
	{
		Name:     "master.zip",
		URL:      "https://github.com/magdalenafuentes/metadata/archive/master.zip",
		Checksum: "7dbe87fedbaaa1f348625a2af1d78030",
		Kind:     download.KindZip,
	},
	{
		Name:     "AIST.RWC-MDB-J-2001.BEAT.zip",
		URL:      "https://staff.aist.go.jp/m.goto/RWC-MDB/AIST-Annotation/AIST.RWC-MDB-J-2001.BEAT.zip",
		Checksum: "b483853da05d0fff3992879f7729bcb4",
		Kind:     download.KindZip,
		DestDir:  "annotations",
	},
	{
		Name:     "AIST.RWC-MDB-J-2001.CHORUS.zip",
		URL:      "https://staff.aist.go.jp/m.goto/RWC-MDB/AIST-Annotation/AIST.RWC-MDB-J-2001.CHORUS.zip",
		Checksum: "44afcf7f193d7e48a7d99e7a6f3ed39d",
		Kind:     download.KindZip,
		DestDir:  "annotations",
	},
}

// Record is the reconciled catalog row for one piece. All fields are kept as
// the catalog prints them; an absent metadata table leaves every field empty.
type Record struct {
	PieceNumber string
	Suffix      string
	TrackNumber string
	Title       string
	Artist      string
	Duration    string
	Variation   string
	Instruments string
}

// Track is the per-piece view: the audio path, catalog metadata, and lazily
// parsed AIST annotations.
type Track struct {
	TrackID      string
	AudioPath    string
	BeatsPath    string
	SectionsPath string
	HasMetadata  bool
	Metadata     Record

	beats    datasets.Lazy[*annotations.Beats]
	sections datasets.Lazy[*annotations.Sections]
}

// Beats parses the AIST beat annotation, at most once per Track.
func (t *Track) Beats() (*annotations.Beats, error) {
	return t.beats.Load(func() (*annotations.Beats, error) {
		return annotations.LoadAISTBeats(t.BeatsPath)
	})
}

// Sections parses the AIST chorus-section annotation, at most once per Track.
func (t *Track) Sections() (*annotations.Sections, error) {
	return t.sections.Load(func() (*annotations.Sections, error) {
		return annotations.LoadAISTSections(t.SectionsPath)
	})
}

// Loader is the RWC Jazz dataset loader.
type Loader struct {
	logger *slog.Logger
	idx    *index.Index
	cache  metadata.Cache[Record]
}

// New constructs a loader. A nil logger disables logging.
func New(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logging.NewComponentLogger(logger, "rwcjazz"),
		idx:    index.MustParse(indexData),
	}
}

func (l *Loader) Name() string  { return "rwcjazz" }
func (l *Loader) Title() string { return "RWC Jazz" }

// DirName returns the dataset directory under the data home.
func (l *Loader) DirName() string { return dirName }

// Index returns the packaged manifest.
func (l *Loader) Index() *index.Index { return l.idx }

// TrackIDs returns all track identifiers in sorted order.
func (l *Loader) TrackIDs() []string { return l.idx.TrackIDs() }

// Remotes lists the downloadable artifacts: the catalog metadata archive and
// the two AIST annotation archives.
func (l *Loader) Remotes() []download.RemoteFile { return remotes }

// PostDownload is a no-op; the archives extract into their final layout.
func (l *Loader) PostDownload(dataRoot string) error { return nil }

// DownloadInstructions explains how to lay out the audio, which is only
// distributed on physical media.
func (l *Loader) DownloadInstructions() string {
	return `The audio files of the RWC Jazz database are not available for
download. If you have the discs, place their contents into a folder
called RWC-Jazz under the data home with the following structure:
    RWC-Jazz/
        annotations/
        audio/rwc-j-m0i with i in [1 .. 4]
        metadata-master/`
}

// Track builds the view for one piece. The identifier must exist in the
// index; absent metadata yields a placeholder record, never an error.
func (l *Loader) Track(id, dataRoot string) (*Track, error) {
	if _, err := l.idx.Track(id); err != nil {
		return nil, err
	}

	track := &Track{TrackID: id}
	if ref, ok := l.idx.First(id, "audio"); ok {
		track.AudioPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "beats"); ok {
		track.BeatsPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "sections"); ok {
		track.SectionsPath = filepath.Join(dataRoot, ref.Path)
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

func (l *Loader) buildTable(dataRoot string) (map[string]Record, error) {
	path := filepath.Join(dataRoot, filepath.FromSlash(metadataFile))
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("metadata file not found, using placeholder records",
				logging.String(logging.FieldPath, path))
			return nil, nil
		}
		return nil, fmt.Errorf("read metadata file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.Comma = sniffDelimiter(content)
	reader.FieldsPerRecord = 8

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}

	table := make(map[string]Record)
	for _, row := range rows {
		if row[0] == "Piece No." {
			continue // header
		}
		id, err := normalizeID(row[0])
		if err != nil {
			return nil, fmt.Errorf("metadata file %s: %w", path, err)
		}
		table[id] = Record{
			PieceNumber: row[0],
			Suffix:      row[1],
			TrackNumber: row[2],
			Title:       row[3],
			Artist:      row[4],
			Duration:    row[5],
			Variation:   row[6],
			Instruments: row[7],
		}
	}
	return table, nil
}

// sniffDelimiter picks tab or comma depending on which the first line uses.
// The catalog has shipped in both forms.
func sniffDelimiter(content []byte) rune {
	line, _, _ := strings.Cut(string(content), "\n")
	if strings.ContainsRune(line, '\t') {
		return '\t'
	}
	return ','
}

// normalizeID maps a catalog piece number such as "No. 16" onto the
// zero-padded index identifier "RM-J016".
func normalizeID(pieceNumber string) (string, error) {
	_, digits, found := strings.Cut(pieceNumber, ".")
	digits = strings.TrimSpace(digits)
	if !found || digits == "" {
		return "", fmt.Errorf("malformed piece number %q", pieceNumber)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", fmt.Errorf("malformed piece number %q", pieceNumber)
	}
	return fmt.Sprintf("RM-J%03d", n), nil
}
