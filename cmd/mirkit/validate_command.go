package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mirkit/internal/datasets/registry"
	"mirkit/internal/reportstore"
	"mirkit/internal/validate"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "validate <dataset>",
		Short: "Check a local dataset copy against its packaged manifest",
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

			result, err := validate.Dataset(ds.Index(), dataRoot)
			if err != nil {
				return fmt.Errorf("validate %s: %w", ds.Name(), err)
			}

			if !noRecord {
				store, err := reportstore.Open(cfg.Paths.ReportDBPath)
				if err != nil {
					return fmt.Errorf("open report store: %w", err)
				}
				defer store.Close()

				report := &reportstore.Report{
					Dataset:          ds.Name(),
					DataRoot:         dataRoot,
					TotalFiles:       len(ds.Index().Files()),
					Missing:          result.Missing,
					InvalidChecksums: result.InvalidChecksums,
				}
				if err := store.Record(cmd.Context(), report); err != nil {
					return fmt.Errorf("record validation run: %w", err)
				}
			}

			if result.Clean() {
				fmt.Fprintf(out, "%s: all %d files present and verified\n",
					ds.Name(), len(ds.Index().Files()))
				return nil
			}

			if len(result.Missing) > 0 {
				fmt.Fprintf(out, "Missing files (%d):\n", len(result.Missing))
				for _, path := range result.Missing {
					fmt.Fprintf(out, "  %s\n", path)
				}
			}
			if len(result.InvalidChecksums) > 0 {
				fmt.Fprintf(out, "Invalid checksums (%d):\n", len(result.InvalidChecksums))
				for _, path := range result.InvalidChecksums {
					fmt.Fprintf(out, "  %s\n", path)
				}
			}
			return fmt.Errorf("%s: %d missing, %d invalid",
				ds.Name(), len(result.Missing), len(result.InvalidChecksums))
		},
	}

	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Skip recording the run in the report database")
	return cmd
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <dataset>",
		Short: "Show past validation runs for a dataset",
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

			store, err := reportstore.Open(cfg.Paths.ReportDBPath)
			if err != nil {
				return fmt.Errorf("open report store: %w", err)
			}
			defer store.Close()

			reports, err := store.History(cmd.Context(), ds.Name(), limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(reports) == 0 {
				fmt.Fprintf(out, "No validation runs recorded for %s\n", ds.Name())
				return nil
			}

			rows := make([][]string, 0, len(reports))
			for _, report := range reports {
				status := "clean"
				if !report.Clean() {
					status = "dirty"
				}
				rows = append(rows, []string{
					report.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					status,
					strconv.Itoa(report.TotalFiles),
					strconv.Itoa(len(report.Missing)),
					strconv.Itoa(len(report.InvalidChecksums)),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run at", "Status", "Files", "Missing", "Invalid"},
				rows, 2, 3, 4))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show")
	return cmd
}
