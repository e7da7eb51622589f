package annotations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

// jamsDocument is the subset of the JAMS schema the loaders consume.
type jamsDocument struct {
	Annotations []jamsAnnotation `json:"annotations"`
}

type jamsAnnotation struct {
	Namespace string            `json:"namespace"`
	Data      []jamsObservation `json:"data"`
	Metadata  jamsMetadata      `json:"annotation_metadata"`
}

type jamsMetadata struct {
	DataSource string `json:"data_source"`
}

type jamsObservation struct {
	Time     float64         `json:"time"`
	Duration float64         `json:"duration"`
	Value    json.RawMessage `json:"value"`
}

func loadJAMS(path string) (*jamsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open jams file: %w", err)
	}
	doc := &jamsDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse jams file %s: %w", path, err)
	}
	return doc, nil
}

func (d *jamsDocument) search(namespace string) []jamsAnnotation {
	var matches []jamsAnnotation
	for _, annotation := range d.Annotations {
		if annotation.Namespace == namespace {
			matches = append(matches, annotation)
		}
	}
	return matches
}

// LoadJAMSBeats extracts the beat_position annotation from a JAMS document.
func LoadJAMSBeats(path string) (*Beats, error) {
	doc, err := loadJAMS(path)
	if err != nil || doc == nil {
		return nil, err
	}
	matches := doc.search("beat_position")
	if len(matches) == 0 {
		return nil, fmt.Errorf("jams file %s: no beat_position annotation", path)
	}

	beats := &Beats{}
	for _, obs := range matches[0].Data {
		var value struct {
			Position int `json:"position"`
		}
		if err := json.Unmarshal(obs.Value, &value); err != nil {
			return nil, fmt.Errorf("jams file %s: bad beat value: %w", path, err)
		}
		beats.Times = append(beats.Times, obs.Time)
		beats.Positions = append(beats.Positions, value.Position)
	}
	return beats, nil
}

// LoadJAMSChords extracts a chord annotation. GuitarSet stores the leadsheet
// chords as the first chord annotation and the inferred chords as the second.
func LoadJAMSChords(path string, leadsheet bool) (*Chords, error) {
	doc, err := loadJAMS(path)
	if err != nil || doc == nil {
		return nil, err
	}
	matches := doc.search("chord")
	want := 0
	if !leadsheet {
		want = 1
	}
	if len(matches) <= want {
		return nil, fmt.Errorf("jams file %s: missing chord annotation %d", path, want)
	}

	chords := &Chords{}
	for _, obs := range matches[want].Data {
		var label string
		if err := json.Unmarshal(obs.Value, &label); err != nil {
			return nil, fmt.Errorf("jams file %s: bad chord value: %w", path, err)
		}
		chords.Starts = append(chords.Starts, obs.Time)
		chords.Ends = append(chords.Ends, obs.Time+obs.Duration)
		chords.Labels = append(chords.Labels, label)
	}
	return chords, nil
}

// LoadJAMSKeys extracts the key_mode annotation from a JAMS document.
func LoadJAMSKeys(path string) (*Keys, error) {
	doc, err := loadJAMS(path)
	if err != nil || doc == nil {
		return nil, err
	}
	matches := doc.search("key_mode")
	if len(matches) == 0 {
		return nil, fmt.Errorf("jams file %s: no key_mode annotation", path)
	}

	keys := &Keys{}
	for _, obs := range matches[0].Data {
		var label string
		if err := json.Unmarshal(obs.Value, &label); err != nil {
			return nil, fmt.Errorf("jams file %s: bad key value: %w", path, err)
		}
		keys.Starts = append(keys.Starts, obs.Time)
		keys.Ends = append(keys.Ends, obs.Time+obs.Duration)
		keys.Labels = append(keys.Labels, label)
	}
	return keys, nil
}

// LoadJAMSPitchContour extracts the pitch contour recorded for one guitar
// string, selected by the annotation's data_source field.
func LoadJAMSPitchContour(path string, stringNum int) (*Melody, error) {
	doc, err := loadJAMS(path)
	if err != nil || doc == nil {
		return nil, err
	}

	source := strconv.Itoa(stringNum)
	for _, annotation := range doc.search("pitch_contour") {
		if annotation.Metadata.DataSource != source {
			continue
		}
		melody := &Melody{}
		for _, obs := range annotation.Data {
			var value struct {
				Frequency float64 `json:"frequency"`
			}
			if err := json.Unmarshal(obs.Value, &value); err != nil {
				return nil, fmt.Errorf("jams file %s: bad contour value: %w", path, err)
			}
			melody.Times = append(melody.Times, obs.Time)
			melody.Frequencies = append(melody.Frequencies, value.Frequency)
			melody.Confidence = append(melody.Confidence, 1.0)
		}
		return melody, nil
	}
	return nil, fmt.Errorf("jams file %s: no pitch_contour annotation for string %d", path, stringNum)
}

// LoadJAMSNotes extracts the note_midi annotation recorded for one guitar
// string, selected by the annotation's data_source field.
func LoadJAMSNotes(path string, stringNum int) (*Notes, error) {
	doc, err := loadJAMS(path)
	if err != nil || doc == nil {
		return nil, err
	}

	source := strconv.Itoa(stringNum)
	for _, annotation := range doc.search("note_midi") {
		if annotation.Metadata.DataSource != source {
			continue
		}
		notes := &Notes{}
		for _, obs := range annotation.Data {
			var pitch float64
			if err := json.Unmarshal(obs.Value, &pitch); err != nil {
				return nil, fmt.Errorf("jams file %s: bad note value: %w", path, err)
			}
			notes.Starts = append(notes.Starts, obs.Time)
			notes.Ends = append(notes.Ends, obs.Time+obs.Duration)
			notes.Pitches = append(notes.Pitches, pitch)
		}
		return notes, nil
	}
	return nil, fmt.Errorf("jams file %s: no note_midi annotation for string %d", path, stringNum)
}
