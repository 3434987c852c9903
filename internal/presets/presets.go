// Package presets embeds the built-in profile declarations shipped with the
// binary. A preset is addressed as "builtin:<name>".
package presets

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/specialistvlad/toolprofile/internal/hcl"
)

// Scheme prefixes a preset name on the command line.
const Scheme = "builtin:"

//go:embed *.hcl
var files embed.FS

// Names returns the available preset names, sorted.
func Names() []string {
	entries, _ := fs.ReadDir(files, ".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".hcl"))
	}
	sort.Strings(names)
	return names
}

// IsPreset reports whether ref uses the preset scheme.
func IsPreset(ref string) bool {
	return strings.HasPrefix(ref, Scheme)
}

// Open decodes the named preset. name may carry the Scheme prefix.
func Open(ctx context.Context, name string) (*config.Declaration, error) {
	name = strings.TrimPrefix(name, Scheme)
	src, err := files.ReadFile(name + ".hcl")
	if err != nil {
		return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return hcl.NewDecoder().Decode(ctx, Scheme+name, src)
}
