package medleydb

import (
	"errors"
	"path/filepath"
	"testing"

	"mirkit/internal/index"
	"mirkit/internal/testsupport"
)

const metadataFixture = `{
  "LizNelson_Rainfall": {
    "artist": "Liz Nelson",
    "title": "Rainfall",
    "genre": "Singer/Songwriter",
    "is_excerpt": false,
    "is_instrumental": false,
    "n_sources": 11
  },
  "MusicDelta_Reggae": {
    "artist": "Music Delta",
    "title": "Reggae",
    "genre": "Reggae",
    "is_excerpt": true,
    "is_instrumental": false,
    "n_sources": 7
  }
}`

func writeMetadata(t *testing.T, dataRoot, content string) {
	t.Helper()
	testsupport.WriteFile(t, filepath.Join(dataRoot, metadataFile), []byte(content))
}

func TestTrackWithMetadata(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	writeMetadata(t, root, metadataFixture)

	track, err := loader.Track("LizNelson_Rainfall", root)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if !track.HasMetadata {
		t.Fatal("expected reconciled metadata")
	}
	m := track.Metadata
	if m.Artist != "Liz Nelson" || m.Genre != "Singer/Songwriter" {
		t.Errorf("record wrong: %+v", m)
	}
	if m.IsExcerpt == nil || *m.IsExcerpt {
		t.Error("is_excerpt should be false")
	}
	if m.SourceCount == nil || *m.SourceCount != 11 {
		t.Errorf("n_sources wrong: %v", m.SourceCount)
	}
	want := filepath.Join(root, "audio", "LizNelson_Rainfall_MIX.wav")
	if track.AudioPath != want {
		t.Errorf("audio path: got %q, want %q", track.AudioPath, want)
	}
}

func TestTrackWithoutMetadataUsesPlaceholders(t *testing.T) {
	loader := New(nil)

	track, err := loader.Track("MusicDelta_Beatles", t.TempDir())
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if track.HasMetadata {
		t.Error("expected placeholder metadata")
	}
	m := track.Metadata
	if m.Artist != "" || m.IsExcerpt != nil || m.SourceCount != nil {
		t.Errorf("placeholder record not empty: %+v", m)
	}
}

func TestMalformedMetadataFailsReconciliation(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	writeMetadata(t, root, "{not json")

	if _, err := loader.Track("MusicDelta_Reggae", root); err == nil {
		t.Fatal("expected error for malformed metadata JSON")
	}
}

func TestTrackUnknownID(t *testing.T) {
	loader := New(nil)
	_, err := loader.Track("NoSuchSong", t.TempDir())
	if !errors.Is(err, index.ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestMelodyVariantsLazyLoad(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	id := "MusicDelta_80sRock"

	write := func(role, content string) {
		t.Helper()
		ref, ok := loader.Index().First(id, role)
		if !ok {
			t.Fatalf("index missing role %s", role)
		}
		testsupport.WriteFile(t, filepath.Join(root, ref.Path), []byte(content))
	}
	write("melody1", "0.00,0\n0.0058,330.2\n")
	write("melody2", "0.00,110.0\n0.0058,112.1\n")
	write("melody3", "0.00,110.0,220.0\n0.0058,112.1,0\n")

	track, err := loader.Track(id, root)
	if err != nil {
		t.Fatal(err)
	}

	m1, err := track.Melody1()
	if err != nil {
		t.Fatalf("Melody1 failed: %v", err)
	}
	if len(m1.Times) != 2 || m1.Confidence[0] != 0 || m1.Confidence[1] != 1 {
		t.Errorf("melody1 parsed wrong: %+v", m1)
	}

	m2, err := track.Melody2()
	if err != nil {
		t.Fatalf("Melody2 failed: %v", err)
	}
	if m2.Frequencies[0] != 110.0 {
		t.Errorf("melody2 parsed wrong: %+v", m2)
	}

	m3, err := track.Melody3()
	if err != nil {
		t.Fatalf("Melody3 failed: %v", err)
	}
	if len(m3.Frequencies) != 2 || len(m3.Frequencies[0]) != 2 || m3.Frequencies[0][1] != 220.0 {
		t.Errorf("melody3 parsed wrong: %+v", m3)
	}

	// Missing annotation files yield nil without error.
	other, err := loader.Track("AimeeNorwich_Child", root)
	if err != nil {
		t.Fatal(err)
	}
	melody, err := other.Melody1()
	if err != nil {
		t.Fatalf("missing melody should not error: %v", err)
	}
	if melody != nil {
		t.Error("missing melody should be nil")
	}
}

func TestNoRemotesButInstructions(t *testing.T) {
	loader := New(nil)
	if len(loader.Remotes()) != 0 {
		t.Error("dataset is access-gated; no remotes expected")
	}
	if loader.DownloadInstructions() == "" {
		t.Error("instructions must be present")
	}
}
