// Package registry assembles the dataset loaders behind the shared Dataset
// interface for the CLI.
package registry

import (
	"fmt"
	"log/slog"

	"mirkit/internal/datasets"
	"mirkit/internal/datasets/guitarset"
	"mirkit/internal/datasets/medleydb"
	"mirkit/internal/datasets/orchset"
	"mirkit/internal/datasets/rwcjazz"
)

// All constructs every dataset loader, ordered by registry name.
func All(logger *slog.Logger) []datasets.Dataset {
	return []datasets.Dataset{
		guitarset.New(logger),
		medleydb.New(logger),
		orchset.New(logger),
		rwcjazz.New(logger),
	}
}

// Get looks up one dataset loader by registry name.
func Get(name string, logger *slog.Logger) (datasets.Dataset, error) {
	for _, ds := range All(logger) {
		if ds.Name() == name {
			return ds, nil
		}
	}
	return nil, fmt.Errorf("unknown dataset %q (run 'mirkit datasets' for the list)", name)
}
