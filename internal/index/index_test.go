package index

import (
	"errors"
	"reflect"
	"testing"
)

const sampleJSON = `{
	"T2": {"audio": [["a/t2.wav", "222"]]},
	"T1": {
		"audio": [["a/t1.wav", "abc123"]],
		"melody": [["m/t1.csv", "111"]]
	}
}`

func TestParseAndLookup(t *testing.T) {
	idx, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := idx.TrackIDs(); !reflect.DeepEqual(got, []string{"T1", "T2"}) {
		t.Errorf("TrackIDs not sorted: %v", got)
	}
	if idx.Len() != 2 {
		t.Errorf("Len: got %d, want 2", idx.Len())
	}
	if !idx.Has("T1") || idx.Has("T3") {
		t.Error("Has gave wrong membership")
	}

	entry, err := idx.Track("T1")
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if entry["audio"][0].Path != "a/t1.wav" || entry["audio"][0].Checksum != "abc123" {
		t.Errorf("unexpected audio ref: %+v", entry["audio"][0])
	}

	ref, ok := idx.First("T1", "melody")
	if !ok || ref.Path != "m/t1.csv" {
		t.Errorf("First melody: ok=%v ref=%+v", ok, ref)
	}
	if _, ok := idx.First("T1", "beats"); ok {
		t.Error("First should miss for unknown role")
	}
}

func TestTrackNotFound(t *testing.T) {
	idx := MustParse([]byte(sampleJSON))
	_, err := idx.Track("nope")
	if !errors.Is(err, ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestFilesDeterministicOrder(t *testing.T) {
	idx := MustParse([]byte(sampleJSON))

	want := []FileRef{
		{Path: "a/t1.wav", Checksum: "abc123"},
		{Path: "m/t1.csv", Checksum: "111"},
		{Path: "a/t2.wav", Checksum: "222"},
	}
	for i := 0; i < 5; i++ {
		if got := idx.Files(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Files order unstable: %v", got)
		}
	}
}

func TestParseRejectsEmptyPath(t *testing.T) {
	if _, err := Parse([]byte(`{"T1": {"audio": [["", "abc"]]}}`)); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
