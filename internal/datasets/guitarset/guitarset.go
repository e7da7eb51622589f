// Package guitarset loads GuitarSet: acoustic guitar excerpts recorded with a
// hexaphonic pickup, annotated with beats, chords, keys, and per-string pitch
// contours and notes in JAMS files. Track metadata is encoded in the
// identifier itself rather than in a separate table.
package guitarset

import (
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"mirkit/internal/annotations"
	"mirkit/internal/datasets"
	"mirkit/internal/download"
	"mirkit/internal/index"
	"mirkit/internal/logging"
)

//go:embed guitarset_index.json
var indexData []byte

const dirName = "GuitarSet"

// Strings names the six guitar strings from low E to high e, in the order the
// JAMS annotations number them.
var Strings = []string{"E", "A", "D", "G", "B", "e"}

var styleNames = map[string]string{
	"Jazz": "Jazz",
	"BN":   "Bossa Nova",
	"Rock": "Rock",
	"SS":   "Singer-Songwriter",
	"Funk": "Funk",
}

var remotes = []download.RemoteFile{
	{
		Name:     "annotation.zip",
		URL:      "https://zenodo.org/record/3371780/files/annotation.zip?download=1",
		Checksum: "b39b78e63d3446f2e54ddb7a54df9b10",
		Kind:     download.KindZip,
		DestDir:  "annotation",
	},
	{
		Name:     "audio_hex-pickup_debleeded.zip",
		URL:      "https://zenodo.org/record/3371780/files/audio_hex-pickup_debleeded.zip?download=1",
		Checksum: "c31d97279464c9a67e640cb9061fb0c6",
		Kind:     download.KindZip,
		DestDir:  "audio_hex-pickup_debleeded",
	},
	{
		Name:     "audio_hex-pickup_original.zip",
		URL:      "https://zenodo.org/record/3371780/files/audio_hex-pickup_original.zip?download=1",
		Checksum: "f9911bf217cb40e9e68edf3726ef86cc",
		Kind:     download.KindZip,
		DestDir:  "audio_hex-pickup_original",
	},
	{
		Name:     "audio_mono-mic.zip",
		URL:      "https://zenodo.org/record/3371780/files/audio_mono-mic.zip?download=1",
		Checksum: "275966d6610ac34999b58426beb119c3",
		Kind:     download.KindZip,
		DestDir:  "audio_mono-mic",
	},
	{
		Name:     "audio_mono-pickup_mix.zip",
		URL:      "https://zenodo.org/record/3371780/files/audio_mono-pickup_mix.zip?download=1",
		Checksum: "aecce79f425a44e2055e46f680e10f6a",
		Kind:     download.KindZip,
		DestDir:  "audio_mono-pickup_mix",
	},
}

// Record is the metadata derived from a track identifier such as
// "00_BN1-129-Eb_comp": player, style, tempo, and performance mode.
type Record struct {
	PlayerID string
	Style    string
	Tempo    float64
	Mode     string
}

// Track is the per-excerpt view: resolved paths, derived metadata, and the
// lazily parsed JAMS annotations.
type Track struct {
	TrackID         string
	AudioMicPath    string
	AudioMixPath    string
	AudioHexPath    string
	AudioHexClnPath string
	JAMSPath        string
	Metadata        Record

	beats           datasets.Lazy[*annotations.Beats]
	leadsheetChords datasets.Lazy[*annotations.Chords]
	inferredChords  datasets.Lazy[*annotations.Chords]
	keys            datasets.Lazy[*annotations.Keys]
	contours        datasets.Lazy[map[string]*annotations.Melody]
	notes           datasets.Lazy[map[string]*annotations.Notes]
}

// Beats parses the beat annotation, at most once per Track.
func (t *Track) Beats() (*annotations.Beats, error) {
	return t.beats.Load(func() (*annotations.Beats, error) {
		return annotations.LoadJAMSBeats(t.JAMSPath)
	})
}

// LeadsheetChords parses the instructed chord annotation. Solo excerpts share
// the chord annotations of their comp counterpart.
func (t *Track) LeadsheetChords() (*annotations.Chords, error) {
	return t.leadsheetChords.Load(func() (*annotations.Chords, error) {
		return annotations.LoadJAMSChords(t.JAMSPath, true)
	})
}

// InferredChords parses the performed chord annotation.
func (t *Track) InferredChords() (*annotations.Chords, error) {
	return t.inferredChords.Load(func() (*annotations.Chords, error) {
		return annotations.LoadJAMSChords(t.JAMSPath, false)
	})
}

// Keys parses the key_mode annotation.
func (t *Track) Keys() (*annotations.Keys, error) {
	return t.keys.Load(func() (*annotations.Keys, error) {
		return annotations.LoadJAMSKeys(t.JAMSPath)
	})
}

// PitchContours parses the per-string pitch contours, keyed by string name
// from low E to high e.
func (t *Track) PitchContours() (map[string]*annotations.Melody, error) {
	return t.contours.Load(func() (map[string]*annotations.Melody, error) {
		contours := make(map[string]*annotations.Melody, len(Strings))
		for i, name := range Strings {
			contour, err := annotations.LoadJAMSPitchContour(t.JAMSPath, i)
			if err != nil {
				return nil, err
			}
			contours[name] = contour
		}
		return contours, nil
	})
}

// Notes parses the per-string MIDI note annotations, keyed by string name
// from low E to high e.
func (t *Track) Notes() (map[string]*annotations.Notes, error) {
	return t.notes.Load(func() (map[string]*annotations.Notes, error) {
		notes := make(map[string]*annotations.Notes, len(Strings))
		for i, name := range Strings {
			stringNotes, err := annotations.LoadJAMSNotes(t.JAMSPath, i)
			if err != nil {
				return nil, err
			}
			notes[name] = stringNotes
		}
		return notes, nil
	})
}

// Loader is the GuitarSet dataset loader.
type Loader struct {
	logger *slog.Logger
	idx    *index.Index
}

// New constructs a loader. A nil logger disables logging.
func New(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logging.NewComponentLogger(logger, "guitarset"),
		idx:    index.MustParse(indexData),
	}
}

func (l *Loader) Name() string  { return "guitarset" }
func (l *Loader) Title() string { return "GuitarSet" }

// DirName returns the dataset directory under the data home.
func (l *Loader) DirName() string { return dirName }

// Index returns the packaged manifest.
func (l *Loader) Index() *index.Index { return l.idx }

// TrackIDs returns all track identifiers in sorted order.
func (l *Loader) TrackIDs() []string { return l.idx.TrackIDs() }

// Remotes lists the five downloadable archives.
func (l *Loader) Remotes() []download.RemoteFile { return remotes }

// PostDownload is a no-op; every archive extracts into its own directory.
func (l *Loader) PostDownload(dataRoot string) error { return nil }

// DownloadInstructions returns "" — GuitarSet downloads fully.
func (l *Loader) DownloadInstructions() string { return "" }

// Track builds the view for one excerpt. The identifier must exist in the
// index and carries the metadata itself, so there is no table to reconcile.
func (l *Loader) Track(id, dataRoot string) (*Track, error) {
	if _, err := l.idx.Track(id); err != nil {
		return nil, err
	}
	record, err := parseID(id)
	if err != nil {
		return nil, err
	}

	track := &Track{TrackID: id, Metadata: record}
	if ref, ok := l.idx.First(id, "audio_mic"); ok {
		track.AudioMicPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "audio_mix"); ok {
		track.AudioMixPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "audio_hex"); ok {
		track.AudioHexPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "audio_hex_cln"); ok {
		track.AudioHexClnPath = filepath.Join(dataRoot, ref.Path)
	}
	if ref, ok := l.idx.First(id, "jams"); ok {
		track.JAMSPath = filepath.Join(dataRoot, ref.Path)
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

// parseID decodes an identifier of the form PLAYER_STYLEn-TEMPO-KEY_MODE,
// e.g. "02_SS3-98-C_comp". The trailing digit of the style token is a
// progression number and is not part of the style name.
func parseID(id string) (Record, error) {
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		return Record{}, fmt.Errorf("malformed track id %q", id)
	}
	title := strings.Split(parts[1], "-")
	if len(title) != 3 {
		return Record{}, fmt.Errorf("malformed track id %q", id)
	}

	styleToken := title[0]
	if len(styleToken) < 2 {
		return Record{}, fmt.Errorf("malformed track id %q", id)
	}
	style, ok := styleNames[styleToken[:len(styleToken)-1]]
	if !ok {
		return Record{}, fmt.Errorf("track id %q: unknown style %q", id, styleToken)
	}
	tempo, err := strconv.ParseFloat(title[1], 64)
	if err != nil {
		return Record{}, fmt.Errorf("track id %q: bad tempo %q", id, title[1])
	}

	return Record{
		PlayerID: parts[0],
		Style:    style,
		Tempo:    tempo,
		Mode:     parts[2],
	}, nil
}
