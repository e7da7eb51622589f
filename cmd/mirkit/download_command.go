package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mirkit/internal/datasets/registry"
	"mirkit/internal/download"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "download <dataset>",
		Short: "Download and extract a dataset's available artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ds, err := registry.Get(args[0], ctx.loggerValue())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dataRoot := cfg.DatasetRoot(ds.DirName())

			remotes := ds.Remotes()
			if len(remotes) > 0 {
				dl := download.New(
					ctx.loggerValue(),
					time.Duration(cfg.Download.TimeoutSeconds)*time.Second,
					cfg.Download.Cleanup,
				)
				if err := dl.Fetch(cmd.Context(), dataRoot, remotes); err != nil {
					return fmt.Errorf("download %s: %w", ds.Name(), err)
				}
				if err := ds.PostDownload(dataRoot); err != nil {
					return fmt.Errorf("post-download fixup for %s: %w", ds.Name(), err)
				}
				fmt.Fprintf(out, "Downloaded %d artifact(s) into %s\n", len(remotes), dataRoot)
			}

			if instructions := ds.DownloadInstructions(); instructions != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, instructions)
			}

			fmt.Fprintf(out, "\nRun 'mirkit validate %s' to verify the dataset.\n", ds.Name())
			return nil
		},
	}
}
