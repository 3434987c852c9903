package codec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/specialistvlad/toolprofile/internal/ctxlog"
	"github.com/specialistvlad/toolprofile/internal/hcl"
)

// Format names a declaration syntax.
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// CompressedExt marks an xz-compressed declaration.
const CompressedExt = ".xz"

var extensions = map[string]Format{
	".hcl":  FormatHCL,
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatHCL, FormatJSON, FormatYAML, FormatTOML}
}

// Suffixes returns every file name suffix a declaration may carry, compressed
// variants included.
func Suffixes() []string {
	suffixes := make([]string, 0, 2*len(extensions))
	for _, ext := range []string{".hcl", ".json", ".yaml", ".yml", ".toml"} {
		suffixes = append(suffixes, ext, ext+CompressedExt)
	}
	return suffixes
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (supported: hcl, json, yaml, toml)", name)
}

// FormatFromPath derives the format from a file name, reporting whether the
// file is xz-compressed.
func FormatFromPath(path string) (Format, bool, error) {
	name := filepath.Base(path)
	compressed := strings.HasSuffix(name, CompressedExt)
	if compressed {
		name = strings.TrimSuffix(name, CompressedExt)
	}
	f, ok := extensions[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return "", false, fmt.Errorf("unrecognized profile file extension: %s", path)
	}
	return f, compressed, nil
}

// Stem strips the format and compression extensions from a file name.
func Stem(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), CompressedExt)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// NewDecoder returns the decoder for a format.
func NewDecoder(f Format) (config.Decoder, error) {
	switch f {
	case FormatHCL:
		return hcl.NewDecoder(), nil
	case FormatJSON:
		return hcl.NewJSONDecoder(), nil
	case FormatYAML:
		return &yamlCodec{}, nil
	case FormatTOML:
		return &tomlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// NewEncoder returns the encoder for a format.
func NewEncoder(f Format) (config.Encoder, error) {
	switch f {
	case FormatHCL:
		return hcl.NewEncoder(), nil
	case FormatJSON:
		return hcl.NewJSONEncoder(), nil
	case FormatYAML:
		return &yamlCodec{}, nil
	case FormatTOML:
		return &tomlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// Decode parses src in the given format.
func Decode(ctx context.Context, f Format, name string, src []byte) (*config.Declaration, error) {
	dec, err := NewDecoder(f)
	if err != nil {
		return nil, err
	}
	return dec.Decode(ctx, name, src)
}

// Encode renders decl in the given format.
func Encode(f Format, decl *config.Declaration) ([]byte, error) {
	enc, err := NewEncoder(f)
	if err != nil {
		return nil, err
	}
	return enc.Encode(decl)
}

// Read loads and decodes the declaration stored at path.
func Read(ctx context.Context, path string) (*config.Declaration, error) {
	logger := ctxlog.FromContext(ctx)

	f, compressed, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	if compressed {
		logger.Debug("Decompressing profile.", "path", path, "compressed_bytes", len(data))
		if data, err = Decompress(data); err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
	}
	logger.Debug("Decoding profile.", "path", path, "format", f)
	return Decode(ctx, f, path, data)
}
