package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/specialistvlad/toolprofile/internal/profile"
	"github.com/spf13/cobra"
)

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROFILE",
		Short: "Show the core fields of a profile",
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
			return exitFor(renderProfile(opts, p))
		},
	}
}

func renderProfile(opts *options, p *profile.Profile) error {
	data := pterm.TableData{{"Field", "Key", "Value"}}
	for _, f := range profile.Fields() {
		value := "(absent)"
		if e, ok := p.Lookup(f.Key); ok {
			value = formatEntry(e)
		}
		data = append(data, []string{f.Name, f.Key, value})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering profile: %w", err)
	}
	fmt.Fprintf(opts.outW, "Profile: %s\n\n%s\n", p.Source(), table)

	features := p.Features()
	if len(features) == 0 {
		features = []string{"(none)"}
	}
	fmt.Fprintf(opts.outW, "\nFeatures: %s\n", strings.Join(features, ", "))
	return nil
}

func formatEntry(e *config.Entry) string {
	if e.Kind == config.KindString {
		return e.Str
	}
	if len(e.List) == 0 {
		return "[]"
	}
	return formatTokens(e.List)
}

// formatTokens joins tokens with spaces, quoting any token that would be
// ambiguous in that form.
func formatTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		if t == "" || strings.ContainsAny(t, " \t\"") {
			t = fmt.Sprintf("%q", t)
		}
		quoted[i] = t
	}
	return strings.Join(quoted, " ")
}
