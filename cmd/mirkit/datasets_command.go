package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mirkit/internal/datasets/registry"
)

func newDatasetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, 4)
			for _, ds := range registry.All(ctx.loggerValue()) {
				access := "download"
				if len(ds.Remotes()) == 0 {
					access = "manual"
				} else if ds.DownloadInstructions() != "" {
					access = "partial"
				}
				rows = append(rows, []string{
					ds.Name(),
					ds.Title(),
					strconv.Itoa(ds.Index().Len()),
					access,
					cfg.DatasetRoot(ds.DirName()),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "Title", "Tracks", "Access", "Data root"},
				rows, 2))
			return nil
		},
	}
}

func newTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <dataset>",
		Short: "List the track identifiers of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := registry.Get(args[0], ctx.loggerValue())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range ds.Index().TrackIDs() {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
}

func newCiteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "cite <dataset>",
		Short:       "Print the reference for a dataset",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := registry.Get(args[0], ctx.loggerValue())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ds.Citation())
			return nil
		},
	}
}
