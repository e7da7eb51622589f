package annotations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

// LoadMelody decodes a two-column time/frequency contour file using the given
// delimiter (tab for Orchset, comma for MedleyDB). A missing file yields a
// nil contour without error.
func LoadMelody(path string, delimiter rune) (*Melody, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open melody file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = 2

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse melody file %s: %w", path, err)
	}

	melody := &Melody{
		Times:       make([]float64, 0, len(rows)),
		Frequencies: make([]float64, 0, len(rows)),
		Confidence:  make([]float64, 0, len(rows)),
	}
	for i, row := range rows {
		timestamp, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("melody file %s row %d: bad time %q", path, i+1, row[0])
		}
		frequency, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("melody file %s row %d: bad frequency %q", path, i+1, row[1])
		}
		confidence := 0.0
		if frequency > 0 {
			confidence = 1.0
		}
		melody.Times = append(melody.Times, timestamp)
		melody.Frequencies = append(melody.Frequencies, frequency)
		melody.Confidence = append(melody.Confidence, confidence)
	}
	return melody, nil
}

// LoadMultiMelody decodes a comma-delimited contour file whose rows carry a
// time stamp followed by a variable number of simultaneous frequencies.
func LoadMultiMelody(path string) (*MultiMelody, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open melody file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // column count varies per row

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse melody file %s: %w", path, err)
	}

	melody := &MultiMelody{
		Times:       make([]float64, 0, len(rows)),
		Frequencies: make([][]float64, 0, len(rows)),
	}
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("melody file %s row %d: expected time and at least one frequency", path, i+1)
		}
		timestamp, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("melody file %s row %d: bad time %q", path, i+1, row[0])
		}
		frequencies := make([]float64, 0, len(row)-1)
		for _, field := range row[1:] {
			frequency, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("melody file %s row %d: bad frequency %q", path, i+1, field)
			}
			frequencies = append(frequencies, frequency)
		}
		melody.Times = append(melody.Times, timestamp)
		melody.Frequencies = append(melody.Frequencies, frequencies)
	}
	return melody, nil
}
