package registry

import (
	"sort"
	"testing"
)

func TestAllSortedAndNamed(t *testing.T) {
	all := All(nil)
	if len(all) != 4 {
		t.Fatalf("expected 4 datasets, got %d", len(all))
	}

	names := make([]string, 0, len(all))
	for _, ds := range all {
		if ds.Name() == "" || ds.Title() == "" || ds.DirName() == "" {
			t.Errorf("dataset %q has empty identity fields", ds.Name())
		}
		if ds.Index().Len() == 0 {
			t.Errorf("dataset %q has an empty index", ds.Name())
		}
		if ds.Citation() == "" {
			t.Errorf("dataset %q has no citation", ds.Name())
		}
		if len(ds.Remotes()) == 0 && ds.DownloadInstructions() == "" {
			t.Errorf("dataset %q has neither remotes nor instructions", ds.Name())
		}
		names = append(names, ds.Name())
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("datasets not ordered by name: %v", names)
	}
}

func TestGet(t *testing.T) {
	ds, err := Get("orchset", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ds.Title() != "Orchset" {
		t.Errorf("wrong dataset: %q", ds.Title())
	}

	if _, err := Get("nope", nil); err == nil {
		t.Fatal("expected error for unknown dataset")
	}
}
