package annotations

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadMelodyTab(t *testing.T) {
	path := writeFixture(t, "contour.mel", "0.00\t0\n0.01\t440.0\n0.02\t441.5\n")

	melody, err := LoadMelody(path, '\t')
	if err != nil {
		t.Fatalf("LoadMelody failed: %v", err)
	}
	if !reflect.DeepEqual(melody.Times, []float64{0.00, 0.01, 0.02}) {
		t.Errorf("Times: %v", melody.Times)
	}
	if !reflect.DeepEqual(melody.Frequencies, []float64{0, 440.0, 441.5}) {
		t.Errorf("Frequencies: %v", melody.Frequencies)
	}
	if !reflect.DeepEqual(melody.Confidence, []float64{0, 1, 1}) {
		t.Errorf("Confidence: %v", melody.Confidence)
	}
}

func TestLoadMelodyMissingFile(t *testing.T) {
	melody, err := LoadMelody(filepath.Join(t.TempDir(), "absent.csv"), ',')
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if melody != nil {
		t.Errorf("expected nil melody, got %+v", melody)
	}
}

func TestLoadMelodyMalformed(t *testing.T) {
	path := writeFixture(t, "contour.csv", "0.0,abc\n")
	if _, err := LoadMelody(path, ','); err == nil {
		t.Fatal("expected error for unparseable frequency")
	}
}

func TestLoadMultiMelody(t *testing.T) {
	path := writeFixture(t, "melody3.csv", "0.0,220.0,440.0\n0.01,221.0\n")

	melody, err := LoadMultiMelody(path)
	if err != nil {
		t.Fatalf("LoadMultiMelody failed: %v", err)
	}
	if len(melody.Frequencies) != 2 || len(melody.Frequencies[0]) != 2 || len(melody.Frequencies[1]) != 1 {
		t.Errorf("Frequencies shape wrong: %v", melody.Frequencies)
	}
}

func TestLoadAISTBeats(t *testing.T) {
	path := writeFixture(t, "RM-J001.BEAT.TXT", "100\t100\t1\n150\t150\t2\n200\t200\t1\n")

	beats, err := LoadAISTBeats(path)
	if err != nil {
		t.Fatalf("LoadAISTBeats failed: %v", err)
	}
	if !reflect.DeepEqual(beats.Times, []float64{1.0, 1.5, 2.0}) {
		t.Errorf("Times: %v", beats.Times)
	}
	if !reflect.DeepEqual(beats.Positions, []int{1, 2, 1}) {
		t.Errorf("Positions: %v", beats.Positions)
	}
}

func TestLoadAISTSections(t *testing.T) {
	path := writeFixture(t, "RM-J001.CHORUS.TXT", "0\t1200\t\"intro\"\n1200\t2400\t\"chorus A\"\n")

	sections, err := LoadAISTSections(path)
	if err != nil {
		t.Fatalf("LoadAISTSections failed: %v", err)
	}
	if !reflect.DeepEqual(sections.Starts, []float64{0, 12}) {
		t.Errorf("Starts: %v", sections.Starts)
	}
	if !reflect.DeepEqual(sections.Ends, []float64{12, 24}) {
		t.Errorf("Ends: %v", sections.Ends)
	}
	if !reflect.DeepEqual(sections.Labels, []string{"intro", "chorus A"}) {
		t.Errorf("Labels: %v", sections.Labels)
	}
}

func TestLoadAISTMissing(t *testing.T) {
	beats, err := LoadAISTBeats(filepath.Join(t.TempDir(), "absent.TXT"))
	if err != nil || beats != nil {
		t.Fatalf("missing beats file: got %+v, %v", beats, err)
	}
}

const jamsFixture = `{
	"annotations": [
		{
			"namespace": "beat_position",
			"annotation_metadata": {"data_source": ""},
			"data": [
				{"time": 0.5, "duration": 0.0, "value": {"position": 1}},
				{"time": 1.0, "duration": 0.0, "value": {"position": 2}}
			]
		},
		{
			"namespace": "chord",
			"annotation_metadata": {"data_source": ""},
			"data": [{"time": 0.0, "duration": 2.0, "value": "A:min"}]
		},
		{
			"namespace": "chord",
			"annotation_metadata": {"data_source": ""},
			"data": [{"time": 0.0, "duration": 2.0, "value": "A:min7"}]
		},
		{
			"namespace": "key_mode",
			"annotation_metadata": {"data_source": ""},
			"data": [{"time": 0.0, "duration": 2.0, "value": "A:minor"}]
		},
		{
			"namespace": "pitch_contour",
			"annotation_metadata": {"data_source": "0"},
			"data": [{"time": 0.1, "duration": 0.0, "value": {"frequency": 82.4}}]
		},
		{
			"namespace": "pitch_contour",
			"annotation_metadata": {"data_source": "1"},
			"data": [{"time": 0.1, "duration": 0.0, "value": {"frequency": 110.0}}]
		},
		{
			"namespace": "note_midi",
			"annotation_metadata": {"data_source": "1"},
			"data": [
				{"time": 0.25, "duration": 0.25, "value": 45.0},
				{"time": 0.5, "duration": 0.25, "value": 47.0}
			]
		}
	]
}`

func TestLoadJAMSBeats(t *testing.T) {
	path := writeFixture(t, "track.jams", jamsFixture)

	beats, err := LoadJAMSBeats(path)
	if err != nil {
		t.Fatalf("LoadJAMSBeats failed: %v", err)
	}
	if !reflect.DeepEqual(beats.Times, []float64{0.5, 1.0}) {
		t.Errorf("Times: %v", beats.Times)
	}
	if !reflect.DeepEqual(beats.Positions, []int{1, 2}) {
		t.Errorf("Positions: %v", beats.Positions)
	}
}

func TestLoadJAMSChordsVariants(t *testing.T) {
	path := writeFixture(t, "track.jams", jamsFixture)

	leadsheet, err := LoadJAMSChords(path, true)
	if err != nil {
		t.Fatalf("leadsheet chords failed: %v", err)
	}
	inferred, err := LoadJAMSChords(path, false)
	if err != nil {
		t.Fatalf("inferred chords failed: %v", err)
	}
	if leadsheet.Labels[0] != "A:min" || inferred.Labels[0] != "A:min7" {
		t.Errorf("chord variants wrong: %v / %v", leadsheet.Labels, inferred.Labels)
	}
	if leadsheet.Ends[0] != 2.0 {
		t.Errorf("interval end wrong: %v", leadsheet.Ends)
	}
}

func TestLoadJAMSKeys(t *testing.T) {
	path := writeFixture(t, "track.jams", jamsFixture)

	keys, err := LoadJAMSKeys(path)
	if err != nil {
		t.Fatalf("LoadJAMSKeys failed: %v", err)
	}
	if !reflect.DeepEqual(keys.Labels, []string{"A:minor"}) {
		t.Errorf("Labels: %v", keys.Labels)
	}
}

func TestLoadJAMSPitchContourByString(t *testing.T) {
	path := writeFixture(t, "track.jams", jamsFixture)

	contour, err := LoadJAMSPitchContour(path, 1)
	if err != nil {
		t.Fatalf("LoadJAMSPitchContour failed: %v", err)
	}
	if !reflect.DeepEqual(contour.Frequencies, []float64{110.0}) {
		t.Errorf("Frequencies: %v", contour.Frequencies)
	}

	if _, err := LoadJAMSPitchContour(path, 5); err == nil {
		t.Fatal("expected error for missing string annotation")
	}
}

func TestLoadJAMSNotesByString(t *testing.T) {
	path := writeFixture(t, "track.jams", jamsFixture)

	notes, err := LoadJAMSNotes(path, 1)
	if err != nil {
		t.Fatalf("LoadJAMSNotes failed: %v", err)
	}
	if !reflect.DeepEqual(notes.Pitches, []float64{45.0, 47.0}) {
		t.Errorf("Pitches: %v", notes.Pitches)
	}
	if !reflect.DeepEqual(notes.Ends, []float64{0.5, 0.75}) {
		t.Errorf("Ends: %v", notes.Ends)
	}

	if _, err := LoadJAMSNotes(path, 3); err == nil {
		t.Fatal("expected error for missing string annotation")
	}
}

func TestLoadJAMSMissingFile(t *testing.T) {
	beats, err := LoadJAMSBeats(filepath.Join(t.TempDir(), "absent.jams"))
	if err != nil || beats != nil {
		t.Fatalf("missing jams file: got %+v, %v", beats, err)
	}
}
