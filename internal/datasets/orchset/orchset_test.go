package orchset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mirkit/internal/index"
	"mirkit/internal/testsupport"
)

const metadataFixture = `excerpt,predominant melodic instruments,alternating melody,contains winds,contains strings,contains brass,only strings,only winds,only brass
Beethoven-S3-I-ex1.wav,Strings+Winds (solo),TRUE,TRUE,TRUE,FALSE,FALSE,FALSE,FALSE
Musorgski-Ravel-PicturesExhibition-Promenade-ex1.wav,Brass,FALSE,FALSE,FALSE,TRUE,FALSE,FALSE,TRUE
Rimski-Korsakov-Scheherazade-YoungPrincePrincess-ex1.wav,"string,winds",TRUE,TRUE,TRUE,FALSE,FALSE,FALSE,FALSE
`

func writeMetadata(t *testing.T, dataRoot, content string) {
	t.Helper()
	testsupport.WriteFile(t, filepath.Join(dataRoot, metadataFile), []byte(content))
}

func TestTrackWithMetadata(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	writeMetadata(t, root, metadataFixture)

	track, err := loader.Track("Beethoven-S3-I-ex1", root)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if !track.HasMetadata {
		t.Fatal("expected reconciled metadata")
	}
	m := track.Metadata
	if m.Composer != "Beethoven" || m.Work != "S3-I" || m.Excerpt != "1" {
		t.Errorf("id split wrong: %q / %q / %q", m.Composer, m.Work, m.Excerpt)
	}
	want := []string{"strings", "winds"}
	if !reflect.DeepEqual(m.PredominantMelodicInstruments, want) {
		t.Errorf("instruments: got %v, want %v", m.PredominantMelodicInstruments, want)
	}
	if m.AlternatingMelody == nil || !*m.AlternatingMelody {
		t.Error("alternating melody should be true")
	}
	if m.OnlyBrass == nil || *m.OnlyBrass {
		t.Error("only brass should be false")
	}
	wantPath := filepath.Join(root, "audio", "mono", "Beethoven-S3-I-ex1.wav")
	if track.AudioMonoPath != wantPath {
		t.Errorf("audio path: got %q, want %q", track.AudioMonoPath, wantPath)
	}
}

func TestMultiTokenComposerSpecialCases(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	writeMetadata(t, root, metadataFixture)

	track, err := loader.Track("Musorgski-Ravel-PicturesExhibition-Promenade-ex1", root)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if track.Metadata.Composer != "Musorgski-Ravel" {
		t.Errorf("Musorgski composer: %q", track.Metadata.Composer)
	}
	if track.Metadata.Work != "PicturesExhibition-Promenade" {
		t.Errorf("Musorgski work: %q", track.Metadata.Work)
	}

	track, err = loader.Track("Rimski-Korsakov-Scheherazade-YoungPrincePrincess-ex1", root)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if track.Metadata.Composer != "Rimski-Korsakov" {
		t.Errorf("Rimski composer: %q", track.Metadata.Composer)
	}
	if track.Metadata.Work != "Scheherazade-YoungPrincePrincess" {
		t.Errorf("Rimski work: %q", track.Metadata.Work)
	}
}

func TestTrackWithoutMetadataUsesPlaceholders(t *testing.T) {
	loader := New(nil)
	root := t.TempDir() // no metadata file

	for _, id := range loader.TrackIDs() {
		track, err := loader.Track(id, root)
		if err != nil {
			t.Fatalf("Track(%s) failed: %v", id, err)
		}
		if track.HasMetadata {
			t.Errorf("Track(%s) should have placeholder metadata", id)
		}
		m := track.Metadata
		if m.Composer != "" || m.AlternatingMelody != nil || m.PredominantMelodicInstruments != nil {
			t.Errorf("Track(%s) placeholder record not empty: %+v", id, m)
		}
	}
}

func TestTrackUnknownID(t *testing.T) {
	loader := New(nil)
	_, err := loader.Track("NotARealExcerpt", t.TempDir())
	if !errors.Is(err, index.ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestMalformedBooleanFailsReconciliation(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	writeMetadata(t, root, "Beethoven-S3-I-ex1.wav,Strings,YES,TRUE,TRUE,FALSE,FALSE,FALSE,FALSE\n")

	if _, err := loader.Track("Beethoven-S3-I-ex1", root); err == nil {
		t.Fatal("expected error for unparseable boolean")
	}
}

func TestMalformedColumnCountFailsReconciliation(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	writeMetadata(t, root, "Beethoven-S3-I-ex1.wav,Strings,TRUE\n")

	if _, err := loader.Track("Beethoven-S3-I-ex1", root); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestMetadataCacheInvalidatesOnRootChange(t *testing.T) {
	loader := New(nil)

	rootA := t.TempDir()
	writeMetadata(t, rootA, metadataFixture)
	track, err := loader.Track("Beethoven-S3-I-ex1", rootA)
	if err != nil {
		t.Fatal(err)
	}
	if !track.HasMetadata {
		t.Fatal("rootA should reconcile metadata")
	}

	// Different root without a metadata file: the cached table must not leak.
	rootB := t.TempDir()
	track, err = loader.Track("Beethoven-S3-I-ex1", rootB)
	if err != nil {
		t.Fatal(err)
	}
	if track.HasMetadata {
		t.Error("rootB has no metadata file; cache should have been rebuilt")
	}
}

func TestMelodyLazyLoad(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()

	ref, ok := loader.Index().First("Ravel-Bolero-ex1", "melody")
	if !ok {
		t.Fatal("index missing melody role")
	}
	testsupport.WriteFile(t, filepath.Join(root, ref.Path), []byte("0.00\t0\n0.01\t392.0\n"))

	track, err := loader.Track("Ravel-Bolero-ex1", root)
	if err != nil {
		t.Fatal(err)
	}
	melody, err := track.Melody()
	if err != nil {
		t.Fatalf("Melody failed: %v", err)
	}
	if len(melody.Times) != 2 || melody.Frequencies[1] != 392.0 {
		t.Errorf("melody parsed wrong: %+v", melody)
	}

	again, err := track.Melody()
	if err != nil {
		t.Fatal(err)
	}
	if again != melody {
		t.Error("melody should be memoized per track instance")
	}
}

func TestPostDownloadFlattens(t *testing.T) {
	loader := New(nil)
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, dirName, "GT", "x.mel"), []byte("0\t0\n"))

	if err := loader.PostDownload(root); err != nil {
		t.Fatalf("PostDownload failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "GT", "x.mel")); err != nil {
		t.Errorf("flattened file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, dirName)); !os.IsNotExist(err) {
		t.Error("nested directory should be removed")
	}

	// A second run with nothing to flatten is a no-op.
	if err := loader.PostDownload(root); err != nil {
		t.Fatalf("idempotent PostDownload failed: %v", err)
	}
}
