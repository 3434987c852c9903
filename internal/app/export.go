package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/toolprofile/internal/codec"
)

// ExportOptions selects the output encoding of Export.
type ExportOptions struct {
	Format   codec.Format
	Compress bool
}

// Export loads the profile behind ref and re-encodes it. The profile is
// validated first, so only loadable profiles are exported.
func (a *App) Export(ctx context.Context, ref string, opts ExportOptions) ([]byte, error) {
	p, err := a.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if opts.Format == "" {
		opts.Format = codec.FormatHCL
	}

	out, err := codec.Encode(opts.Format, p.Declaration())
	if err != nil {
		return nil, fmt.Errorf("exporting %s as %s: %w", ref, opts.Format, err)
	}
	if opts.Compress {
		if out, err = codec.Compress(out); err != nil {
			return nil, fmt.Errorf("compressing export: %w", err)
		}
	}
	a.logger.Debug("Profile exported.", "profile", ref, "format", opts.Format, "compressed", opts.Compress, "bytes", len(out))
	return out, nil
}
