package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/app"
	"github.com/specialistvlad/toolprofile/internal/codec"
	"github.com/spf13/cobra"
)

func newExportCommand(opts *options) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export PROFILE",
		Short: "Re-encode a profile in another format",
		Long: `Load and validate a profile, then write it in the requested format.

Examples:
  toolprofile export builtin:win64-msvc2022
  toolprofile export config.hcl --format yaml
  toolprofile export config.hcl --output config.toml.xz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exportOpts, err := exportOptions(format, output)
			if err != nil {
				return &ExitError{Code: ExitUsage, Message: err.Error()}
			}
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			out, err := a.Export(cmd.Context(), args[0], exportOpts)
			if err != nil {
				return exitFor(err)
			}
			if output == "" {
				_, err = opts.outW.Write(out)
				return exitFor(err)
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return exitFor(fmt.Errorf("writing %s: %w", output, err))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: hcl, json, yaml, toml (default: from --output, else hcl)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout; a .xz suffix compresses")
	return cmd
}

// exportOptions derives the encoding from the flags. An explicit --format
// wins over the output file's extension.
func exportOptions(format, output string) (app.ExportOptions, error) {
	var opts app.ExportOptions
	if output != "" {
		opts.Compress = strings.HasSuffix(output, codec.CompressedExt)
		if f, _, err := codec.FormatFromPath(output); err == nil {
			opts.Format = f
		}
	}
	if format != "" {
		f, err := codec.ParseFormat(format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	if opts.Format == "" {
		opts.Format = codec.FormatHCL
	}
	return opts, nil
}
