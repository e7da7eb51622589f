package datasets

import (
	"strconv"
	"strings"
	"sync"

	"mirkit/internal/download"
	"mirkit/internal/index"
)

// Dataset is the loader surface consumed by generic tooling.
type Dataset interface {
	// Name is the registry key, e.g. "orchset".
	Name() string
	// Title is the human-readable dataset name, e.g. "Orchset".
	Title() string
	// DirName is the dataset's subdirectory under the data home.
	DirName() string
	// Index returns the packaged manifest.
	Index() *index.Index
	// Remotes lists the downloadable artifacts, possibly empty.
	Remotes() []download.RemoteFile
	// PostDownload runs dataset-specific fixups after extraction.
	PostDownload(dataRoot string) error
	// DownloadInstructions returns manual acquisition steps for material
	// that cannot be fetched, or "" when everything downloads.
	DownloadInstructions() string
	// Describe builds a display-oriented view of one track.
	Describe(id, dataRoot string) (TrackInfo, error)
	// Citation returns the reference text for the dataset.
	Citation() string
}

// TrackInfo is a display-oriented track view: resolved absolute paths by role
// and metadata fields in presentation order. Unknown metadata renders as "-".
type TrackInfo struct {
	ID     string
	Paths  map[string]string
	Fields []Field
}

// Field is one labelled metadata value.
type Field struct {
	Name  string
	Value string
}

// Unknown is the rendered placeholder for absent metadata values.
const Unknown = "-"

// FormatString renders a string field, substituting Unknown for empty.
func FormatString(v string) string {
	if v == "" {
		return Unknown
	}
	return v
}

// FormatStrings renders a multi-value field, substituting Unknown for empty.
func FormatStrings(v []string) string {
	if len(v) == 0 {
		return Unknown
	}
	return strings.Join(v, ", ")
}

// FormatBool renders an optional boolean field.
func FormatBool(v *bool) string {
	if v == nil {
		return Unknown
	}
	return strconv.FormatBool(*v)
}

// FormatInt renders an optional integer field.
func FormatInt(v *int) string {
	if v == nil {
		return Unknown
	}
	return strconv.Itoa(*v)
}

// Lazy memoizes one computed value per instance. Dataset tracks use it to
// parse each annotation file at most once.
type Lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

// Load returns the memoized value, invoking fn on first use.
func (l *Lazy[T]) Load(fn func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.value, l.err = fn()
	})
	return l.value, l.err
}
