package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/profile"
	"github.com/spf13/cobra"
)

func newResolveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PROFILE FEATURE",
		Short: "Print the flags, libraries and paths declared for a feature",
		Long: `Print the configuration of one optional feature, one line per declared
kind of value. Exits with status 4 when the feature is not configured, in
which case the build should skip it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			f, err := a.Resolve(cmd.Context(), args[0], args[1])
			if err != nil {
				return exitFor(err)
			}
			writeFeature(opts.outW, f)
			return nil
		},
	}
}

func writeFeature(w io.Writer, f *profile.Feature) {
	fmt.Fprintf(w, "feature: %s\n", f.Name)
	fmt.Fprintf(w, "components: %s\n", strings.Join(f.Components, " "))
	for _, line := range []struct {
		label string
		list  profile.List
	}{
		{"flags", f.Flags},
		{"include", f.IncludePaths},
		{"libs", f.Libraries},
		{"libdirs", f.LibrarySearchPaths},
		{"dirs", f.Dirs},
	} {
		values, ok := line.list.Get()
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", line.label, formatTokens(values))
	}
}
