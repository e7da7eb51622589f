package orchset

import (
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
			"audio_mono":   track.AudioMonoPath,
			"audio_stereo": track.AudioStereoPath,
			"melody":       track.MelodyPath,
		},
	}
	m := track.Metadata
	info.Fields = []datasets.Field{
		{Name: "Composer", Value: datasets.FormatString(m.Composer)},
		{Name: "Work", Value: datasets.FormatString(m.Work)},
		{Name: "Excerpt", Value: datasets.FormatString(m.Excerpt)},
		{Name: "Predominant instruments", Value: datasets.FormatStrings(m.PredominantMelodicInstruments)},
		{Name: "Alternating melody", Value: datasets.FormatBool(m.AlternatingMelody)},
		{Name: "Contains winds", Value: datasets.FormatBool(m.ContainsWinds)},
		{Name: "Contains strings", Value: datasets.FormatBool(m.ContainsStrings)},
		{Name: "Contains brass", Value: datasets.FormatBool(m.ContainsBrass)},
		{Name: "Only strings", Value: datasets.FormatBool(m.OnlyStrings)},
		{Name: "Only winds", Value: datasets.FormatBool(m.OnlyWinds)},
		{Name: "Only brass", Value: datasets.FormatBool(m.OnlyBrass)},
	}
	return info, nil
}

// Citation returns the reference for the dataset.
func (l *Loader) Citation() string {
	return `Bosch, J., Marxer, R., Gomez, E., "Evaluation and Combination of
Pitch Estimation Methods for Melody Extraction in Symphonic
Classical Music", Journal of New Music Research (2016)

@article{bosch2016evaluation,
    title={Evaluation and combination of pitch estimation methods for melody extraction in symphonic classical music},
    author={Bosch, Juan J and Marxer, Ricard and G{\'o}mez, Emilia},
    journal={Journal of New Music Research},
    volume={45},
    number={2},
    pages={101--117},
    year={2016},
    publisher={Taylor & Francis}
}`
}
