package cli

import (
	"io"

	"github.com/specialistvlad/toolprofile/internal/app"
	"github.com/spf13/cobra"
)

// Version is the released version of the binary.
const Version = "0.1.0"

// options carries the global flags and output streams to subcommands.
type options struct {
	logLevel  string
	logFormat string
	outW      io.Writer
	errW      io.Writer
}

// newApp validates the global flags and builds the application.
func (o *options) newApp() (*app.App, error) {
	cfg, err := app.NewConfig(app.Config{LogLevel: o.logLevel, LogFormat: o.logFormat})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return app.NewApp(o.errW, cfg), nil
}

func newRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{outW: outW, errW: errW}

	rootCmd := &cobra.Command{
		Use:   "toolprofile",
		Short: "Toolchain profile loader",
		Long: `toolprofile - load, inspect and resolve toolchain profiles.

A profile declares the compiler, flags, libraries and filename conventions
of one toolchain as UPPERCASE keys. PROFILE is a path to an .hcl, .json,
.yaml, .yml or .toml file (optionally .xz-compressed) or builtin:<name>.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "logging level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log output format: text or json")

	rootCmd.AddCommand(
		newShowCommand(opts),
		newResolveCommand(opts),
		newFeaturesCommand(opts),
		newExportCommand(opts),
		newListCommand(opts),
		newVersionCommand(opts),
	)
	return rootCmd
}
