package annotations

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

// AIST annotation files record timestamps in centiseconds.
const aistTimeUnit = 100.0

// LoadAISTBeats decodes an AIST .BEAT.TXT file: tab-delimited rows of beat
// time (centiseconds), a repeated time column, and the beat position within
// the bar. A missing file yields nil without error.
func LoadAISTBeats(path string) (*Beats, error) {
	rows, err := readAIST(path, 3)
	if err != nil || rows == nil {
		return nil, err
	}

	beats := &Beats{
		Times:     make([]float64, 0, len(rows)),
		Positions: make([]int, 0, len(rows)),
	}
	for i, row := range rows {
		timestamp, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("beat file %s row %d: bad time %q", path, i+1, row[0])
		}
		position, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("beat file %s row %d: bad position %q", path, i+1, row[2])
		}
		beats.Times = append(beats.Times, timestamp/aistTimeUnit)
		beats.Positions = append(beats.Positions, position)
	}
	return beats, nil
}

// LoadAISTSections decodes an AIST .CHORUS.TXT file: tab-delimited rows of
// section start and end (centiseconds) and a label. A missing file yields nil
// without error.
func LoadAISTSections(path string) (*Sections, error) {
	rows, err := readAIST(path, 3)
	if err != nil || rows == nil {
		return nil, err
	}

	sections := &Sections{
		Starts: make([]float64, 0, len(rows)),
		Ends:   make([]float64, 0, len(rows)),
		Labels: make([]string, 0, len(rows)),
	}
	for i, row := range rows {
		start, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("section file %s row %d: bad start %q", path, i+1, row[0])
		}
		end, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("section file %s row %d: bad end %q", path, i+1, row[1])
		}
		sections.Starts = append(sections.Starts, start/aistTimeUnit)
		sections.Ends = append(sections.Ends, end/aistTimeUnit)
		sections.Labels = append(sections.Labels, row[2])
	}
	return sections, nil
}

func readAIST(path string, columns int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open annotation file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = columns

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse annotation file %s: %w", path, err)
	}
	return rows, nil
}
