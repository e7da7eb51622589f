package guitarset

import (
	"strconv"

	"mirkit/internal/datasets"
)

// Describe builds the display view for one excerpt.
func (l *Loader) Describe(id, dataRoot string) (datasets.TrackInfo, error) {
	track, err := l.Track(id, dataRoot)
	if err != nil {
		return datasets.TrackInfo{}, err
	}

	info := datasets.TrackInfo{
		ID: id,
		Paths: map[string]string{
			"audio_mic":     track.AudioMicPath,
			"audio_mix":     track.AudioMixPath,
			"audio_hex":     track.AudioHexPath,
			"audio_hex_cln": track.AudioHexClnPath,
			"jams":          track.JAMSPath,
		},
	}
	m := track.Metadata
	info.Fields = []datasets.Field{
		{Name: "Player", Value: datasets.FormatString(m.PlayerID)},
		{Name: "Style", Value: datasets.FormatString(m.Style)},
		{Name: "Tempo", Value: strconv.FormatFloat(m.Tempo, 'f', -1, 64)},
		{Name: "Mode", Value: datasets.FormatString(m.Mode)},
	}
	return info, nil
}

// Citation returns the reference for the dataset.
func (l *Loader) Citation() string {
	return `Xi, Qingyang, et al.
"GuitarSet: A Dataset for Guitar Transcription."
19th International Society for Music Information Retrieval Conference (2018)

@inproceedings{xi2018guitarset,
    title={GuitarSet: A Dataset for Guitar Transcription},
    author={Xi, Qingyang and Bittner, Rachel M and Ye, Xuzhou and Pauwels, Johan and Bello, Juan P},
    booktitle={International Society of Music Information Retrieval (ISMIR)},
    year={2018}
}`
}
