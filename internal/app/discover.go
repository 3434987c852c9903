package app

import (
	"context"
	"fmt"
	"regexp"

	"github.com/specialistvlad/toolprofile/internal/codec"
	"github.com/specialistvlad/toolprofile/internal/fsutil"
)

// Discovered is a profile file found on disk. Platform and Toolchain are set
// when the file follows the config-<platform>-<toolchain> naming convention.
type Discovered struct {
	Path       string
	Format     codec.Format
	Compressed bool
	Platform   string
	Toolchain  string
}

var profileName = regexp.MustCompile(`^config-([A-Za-z0-9_]+)-([A-Za-z0-9_.]+)$`)

// Discover lists the profile files under root. Files are not decoded.
func (a *App) Discover(ctx context.Context, root string) ([]Discovered, error) {
	a.logger.Debug("Discovering profiles.", "root", root)

	paths, err := fsutil.FindFilesBySuffix(root, codec.Suffixes()...)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", root, err)
	}

	found := make([]Discovered, 0, len(paths))
	for _, path := range paths {
		f, compressed, err := codec.FormatFromPath(path)
		if err != nil {
			continue
		}
		d := Discovered{Path: path, Format: f, Compressed: compressed}
		if m := profileName.FindStringSubmatch(codec.Stem(path)); m != nil {
			d.Platform, d.Toolchain = m[1], m[2]
		}
		found = append(found, d)
	}

	a.logger.Debug("Discovery complete.", "root", root, "count", len(found))
	return found, nil
}
