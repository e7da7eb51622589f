package rwcjazz

import (
	"mirkit/internal/datasets"
)

// Describe builds the display view for one piece.
func (l *Loader) Describe(id, dataRoot string) (datasets.TrackInfo, error) {
	track, err := l.Track(id, dataRoot)
	if err != nil {
		return datasets.TrackInfo{}, err
	}

	info := datasets.TrackInfo{
		ID: id,
		Paths: map[string]string{
			"audio":    track.AudioPath,
			"beats":    track.BeatsPath,
			"sections": track.SectionsPath,
		},
	}
	m := track.Metadata
	info.Fields = []datasets.Field{
		{Name: "Piece number", Value: datasets.FormatString(m.PieceNumber)},
		{Name: "Suffix", Value: datasets.FormatString(m.Suffix)},
		{Name: "Track number", Value: datasets.FormatString(m.TrackNumber)},
		{Name: "Title", Value: datasets.FormatString(m.Title)},
		{Name: "Artist", Value: datasets.FormatString(m.Artist)},
		{Name: "Duration", Value: datasets.FormatString(m.Duration)},
		{Name: "Variation", Value: datasets.FormatString(m.Variation)},
		{Name: "Instruments", Value: datasets.FormatString(m.Instruments)},
	}
	return info, nil
}

// Citation returns the reference for the dataset.
func (l *Loader) Citation() string {
	return `Goto, Masataka, et al.,
"RWC Music Database: Popular, Classical and Jazz Music Databases.",
3rd International Society for Music Information Retrieval Conference (2002)

@inproceedings{goto2002rwc,
    title={RWC Music Database: Popular, Classical and Jazz Music Databases.},
    author={Goto, Masataka and Hashiguchi, Hiroki and Nishimura, Takuichi and Oka, Ryuichi},
    booktitle={3rd International Society for Music Information Retrieval Conference},
    year={2002},
    series={ISMIR},
}`
}
