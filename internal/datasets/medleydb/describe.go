package medleydb

import (
	"mirkit/internal/datasets"
)

// Describe builds the display view for one song.
func (l *Loader) Describe(id, dataRoot string) (datasets.TrackInfo, error) {
	track, err := l.Track(id, dataRoot)
	if err != nil {
		return datasets.TrackInfo{}, err
	}

	info := datasets.TrackInfo{
		ID: id,
		Paths: map[string]string{
			"audio":   track.AudioPath,
			"melody1": track.Melody1Path,
			"melody2": track.Melody2Path,
			"melody3": track.Melody3Path,
		},
	}
	m := track.Metadata
	info.Fields = []datasets.Field{
		{Name: "Artist", Value: datasets.FormatString(m.Artist)},
		{Name: "Title", Value: datasets.FormatString(m.Title)},
		{Name: "Genre", Value: datasets.FormatString(m.Genre)},
		{Name: "Is excerpt", Value: datasets.FormatBool(m.IsExcerpt)},
		{Name: "Is instrumental", Value: datasets.FormatBool(m.IsInstrumental)},
		{Name: "Source count", Value: datasets.FormatInt(m.SourceCount)},
	}
	return info, nil
}

// Citation returns the reference for the dataset.
func (l *Loader) Citation() string {
	return `Bittner, Rachel, et al.
"MedleyDB: A multitrack dataset for annotation-intensive MIR research."
15th International Society for Music Information Retrieval Conference (2014)

@inproceedings{bittner2014medleydb,
    Author = {Bittner, Rachel M and Salamon, Justin and Tierney, Mike and Mauch, Matthias and Cannam, Chris and Bello, Juan P},
    Booktitle = {International Society of Music Information Retrieval (ISMIR)},
    Month = {October},
    Title = {Medley{DB}: A Multitrack Dataset for Annotation-Intensive {MIR} Research},
    Year = {2014}
}`
}
