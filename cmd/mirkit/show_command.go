package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"mirkit/internal/datasets/registry"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <dataset> <track-id>",
		Short: "Show the paths and metadata of one track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ds, err := registry.Get(args[0], ctx.loggerValue())
			if err != nil {
				return err
			}

			info, err := ds.Describe(args[1], cfg.DatasetRoot(ds.DirName()))
			if err != nil {
				return fmt.Errorf("describe track: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Track %s (%s)\n\n", info.ID, ds.Title())

			fieldRows := make([][]string, 0, len(info.Fields))
			for _, field := range info.Fields {
				fieldRows = append(fieldRows, []string{field.Name, field.Value})
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, fieldRows))

			roles := make([]string, 0, len(info.Paths))
			for role := range info.Paths {
				roles = append(roles, role)
			}
			sort.Strings(roles)

			pathRows := make([][]string, 0, len(roles))
			for _, role := range roles {
				pathRows = append(pathRows, []string{role, info.Paths[role]})
			}
			fmt.Fprintln(out, renderTable([]string{"Role", "Path"}, pathRows))
			return nil
		},
	}
}
