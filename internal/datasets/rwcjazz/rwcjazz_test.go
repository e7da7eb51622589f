package rwcjazz

import (
	"errors"
	"path/filepath"
	"testing"

	"mirkit/internal/index"
	"mirkit/internal/testsupport"
)

const metadataFixture = "Piece No.,Suffix,Trk No.,Title,Artist,Playtime,Variation,Instruments\n" +
	"No. 1,M01,Tr. 01,Jive,\"Makoto Nakamura Trio\",3:12,,\"Piano, Bass & Drums\"\n" +
	"No. 2,M01,Tr. 02,For Me,\"Makoto Nakamura Trio\",3:01,,\"Piano, Bass & Drums\"\n"

func writeMetadata(t *testing.T, dataRoot, content string) {
	t.Helper()
	testsupport.WriteFile(t, filepath.Join(dataRoot, "metadata-master", "rwc-j.csv"), []byte(content))
}

func TestTrackWithMetadata(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	writeMetadata(t, root, metadataFixture)

	track, err := loader.Track("RM-J001", root)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if !track.HasMetadata {
		t.Fatal("expected reconciled metadata")
	}
	m := track.Metadata
	if m.PieceNumber != "No. 1" || m.Title != "Jive" || m.Instruments != "Piano, Bass & Drums" {
		t.Errorf("record wrong: %+v", m)
	}
	want := filepath.Join(root, "audio", "rwc-j-m01", "1.wav")
	if track.AudioPath != want {
		t.Errorf("audio path: got %q, want %q", track.AudioPath, want)
	}
}

func TestTabDelimitedMetadata(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	tabbed := "Piece No.\tSuffix\tTrk No.\tTitle\tArtist\tPlaytime\tVariation\tInstruments\n" +
		"No. 3\tM01\tTr. 03\tEntrance\tTrio\t2:58\t\tPiano\n"
	writeMetadata(t, root, tabbed)

	track, err := loader.Track("RM-J003", root)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if !track.HasMetadata || track.Metadata.Title != "Entrance" {
		t.Errorf("tab-delimited record wrong: %+v", track.Metadata)
	}
}

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		piece string
		want  string
	}{
		{"No. 1", "RM-J001"},
		{"No. 16", "RM-J016"},
		{"No. 50", "RM-J050"},
		{"No. 100", "RM-J100"},
	}
	for _, tc := range cases {
		got, err := normalizeID(tc.piece)
		if err != nil {
			t.Errorf("normalizeID(%q) failed: %v", tc.piece, err)
			continue
		}
		if got != tc.want {
			t.Errorf("normalizeID(%q) = %q, want %q", tc.piece, got, tc.want)
		}
	}

	for _, bad := range []string{"", "No 1", "No. ", "No. x"} {
		if _, err := normalizeID(bad); err == nil {
			t.Errorf("normalizeID(%q) should fail", bad)
		}
	}
}

func TestTrackWithoutMetadataUsesPlaceholders(t *testing.T) {
	loader := New(nil)

	track, err := loader.Track("RM-J002", t.TempDir())
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if track.HasMetadata {
		t.Error("expected placeholder metadata")
	}
	if track.Metadata != (Record{}) {
		t.Errorf("placeholder record not empty: %+v", track.Metadata)
	}
}

func TestTrackUnknownID(t *testing.T) {
	loader := New(nil)
	_, err := loader.Track("RM-J999", t.TempDir())
	if !errors.Is(err, index.ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestAnnotationsLazyLoad(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()

	beatsRef, ok := loader.Index().First("RM-J001", "beats")
	if !ok {
		t.Fatal("index missing beats role")
	}
	testsupport.WriteFile(t, filepath.Join(root, beatsRef.Path),
		[]byte("100\t150\t2\n150\t200\t3\n"))

	sectionsRef, ok := loader.Index().First("RM-J001", "sections")
	if !ok {
		t.Fatal("index missing sections role")
	}
	testsupport.WriteFile(t, filepath.Join(root, sectionsRef.Path),
		[]byte("0\t1200\tintro\n1200\t2400\tchorus A\n"))

	track, err := loader.Track("RM-J001", root)
	if err != nil {
		t.Fatal(err)
	}

	beats, err := track.Beats()
	if err != nil {
		t.Fatalf("Beats failed: %v", err)
	}
	if len(beats.Times) != 2 || beats.Times[0] != 1.0 || beats.Positions[1] != 3 {
		t.Errorf("beats parsed wrong: %+v", beats)
	}

	sections, err := track.Sections()
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	if len(sections.Labels) != 2 || sections.Starts[1] != 12.0 || sections.Labels[1] != "chorus A" {
		t.Errorf("sections parsed wrong: %+v", sections)
	}

	again, err := track.Beats()
	if err != nil {
		t.Fatal(err)
	}
	if again != beats {
		t.Error("beats should be memoized per track instance")
	}
}

func TestDownloadInstructionsPresent(t *testing.T) {
	loader := New(nil)
	if loader.DownloadInstructions() == "" {
		t.Error("audio is not downloadable; instructions must be present")
	}
	if len(loader.Remotes()) != 3 {
		t.Errorf("expected 3 downloadable artifacts, got %d", len(loader.Remotes()))
	}
}
