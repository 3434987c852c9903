package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [DIR]",
		Short: "List profile files under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			found, err := a.Discover(cmd.Context(), root)
			if err != nil {
				return exitFor(err)
			}
			if len(found) == 0 {
				fmt.Fprintf(opts.outW, "No profiles found under %s\n", root)
				return nil
			}

			data := pterm.TableData{{"Path", "Format", "Platform", "Toolchain"}}
			for _, d := range found {
				format := string(d.Format)
				if d.Compressed {
					format += "+xz"
				}
				data = append(data, []string{d.Path, format, orDash(d.Platform), orDash(d.Toolchain)})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return exitFor(fmt.Errorf("rendering profile list: %w", err))
			}
			fmt.Fprintln(opts.outW, table)
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
