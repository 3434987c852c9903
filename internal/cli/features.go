package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFeaturesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "features PROFILE",
		Short: "List the optional features a profile configures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			p, err := a.Load(cmd.Context(), args[0])
			if err != nil {
				return exitFor(err)
			}
			for _, name := range p.Features() {
				fmt.Fprintln(opts.outW, name)
			}
			return nil
		},
	}
}
