package cli

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/presets"
	"github.com/spf13/cobra"
)

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(opts.outW, "toolprofile version %s\n", Version)
			fmt.Fprintf(opts.outW, "Built-in profiles: %s\n", strings.Join(presets.Names(), ", "))
		},
	}
}
