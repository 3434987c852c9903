package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/toolprofile/internal/codec"
	"github.com/specialistvlad/toolprofile/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHCL = `
BUILDDIR    = "#build/debug"
CXX         = "clang-cl"
TARGET_ARCH = "arm64"
CXXFLAGS    = ["/nologo", "/Z7"]
SHCXXFLAGS  = CXXFLAGS
PNGLIB      = ["libpng16"]
JPEGLIB     = ["jpeg"]
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	// --- Arrange ---
	a, logs := SetupAppTest(t)
	path := writeFile(t, "config.hcl", []byte(sampleHCL))

	// --- Act ---
	p, err := a.Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "clang-cl", p.CompilerExecutable.String())
	assert.Equal(t, []string{"png", "jpeg", "imageio"}, p.Features())
	assert.Contains(t, logs.String(), "Profile loaded.")
	assert.Contains(t, logs.String(), "Decoding profile.")
	assert.NotContains(t, logs.String(), "Unrecognized target architecture.")
}

func TestLoad_Builtin(t *testing.T) {
	a, _ := SetupAppTest(t)

	p, err := a.Load(context.Background(), "builtin:win64-msvc2022")

	require.NoError(t, err)
	assert.Equal(t, "cl", p.CompilerExecutable.String())
}

func TestLoad_WarnsOnUnknownArchitecture(t *testing.T) {
	a, logs := SetupAppTest(t)
	path := writeFile(t, "config.yaml", []byte("BUILDDIR: build\nCXX: cc\nTARGET_ARCH: riscv64\n"))

	_, err := a.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Unrecognized target architecture.")
	assert.Contains(t, logs.String(), "target_arch=riscv64")
}

func TestLoad_Malformed(t *testing.T) {
	a, _ := SetupAppTest(t)
	path := writeFile(t, "config.toml", []byte("CXX = \"cl\"\n"))

	_, err := a.Load(context.Background(), path)

	require.ErrorIs(t, err, profile.ErrMalformedProfile)
	assert.Contains(t, err.Error(), "loading profile "+path)
	assert.Contains(t, err.Error(), "BUILDDIR")
	assert.Contains(t, err.Error(), "TARGET_ARCH")
}

func TestResolve(t *testing.T) {
	a, logs := SetupAppTest(t)
	path := writeFile(t, "config.hcl", []byte(sampleHCL))

	f, err := a.Resolve(context.Background(), path, "imageio")
	require.NoError(t, err)
	assert.Equal(t, []string{"libpng16", "jpeg"}, f.Libraries.Values())

	_, err = a.Resolve(context.Background(), path, "qt")
	require.ErrorIs(t, err, profile.ErrFeatureNotConfigured)
	assert.Contains(t, logs.String(), "Feature not configured, it should be skipped.")
}

func TestExport(t *testing.T) {
	testCases := []struct {
		name     string
		opts     ExportOptions
		fileName string
	}{
		{name: "default is hcl", opts: ExportOptions{}, fileName: "out.hcl"},
		{name: "json", opts: ExportOptions{Format: codec.FormatJSON}, fileName: "out.json"},
		{name: "yaml", opts: ExportOptions{Format: codec.FormatYAML}, fileName: "out.yaml"},
		{name: "compressed toml", opts: ExportOptions{Format: codec.FormatTOML, Compress: true}, fileName: "out.toml.xz"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			a, _ := SetupAppTest(t)
			src := writeFile(t, "config.hcl", []byte(sampleHCL))
			want, err := a.Load(context.Background(), src)
			require.NoError(t, err)

			// --- Act ---
			out, err := a.Export(context.Background(), src, tc.opts)
			require.NoError(t, err)
			exported := writeFile(t, tc.fileName, out)
			got, err := a.Load(context.Background(), exported)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, want.Keys(), got.Keys())
			assert.True(t, want.SharedLibCompileFlags.Equal(got.SharedLibCompileFlags))
			assert.True(t, want.TargetArchitecture.Equal(got.TargetArchitecture))
		})
	}
}

func TestExport_RefusesMalformedProfile(t *testing.T) {
	a, _ := SetupAppTest(t)
	path := writeFile(t, "config.hcl", []byte(`CXX = "cl"`))

	_, err := a.Export(context.Background(), path, ExportOptions{})

	assert.ErrorIs(t, err, profile.ErrMalformedProfile)
}

func TestDiscover(t *testing.T) {
	// --- Arrange ---
	a, _ := SetupAppTest(t)
	root := t.TempDir()
	for _, name := range []string{
		"config-win64-msvc2022.hcl",
		"config-linux-gcc.yaml.xz",
		filepath.Join("custom", "ci.toml"),
		"README.md",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	// --- Act ---
	found, err := a.Discover(context.Background(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []Discovered{
		{Path: filepath.Join(root, "config-linux-gcc.yaml.xz"), Format: codec.FormatYAML, Compressed: true, Platform: "linux", Toolchain: "gcc"},
		{Path: filepath.Join(root, "config-win64-msvc2022.hcl"), Format: codec.FormatHCL, Platform: "win64", Toolchain: "msvc2022"},
		{Path: filepath.Join(root, "custom", "ci.toml"), Format: codec.FormatTOML},
	}, found)
}

func TestDiscover_MissingRoot(t *testing.T) {
	a, _ := SetupAppTest(t)

	_, err := a.Discover(context.Background(), filepath.Join(t.TempDir(), "absent"))

	assert.Error(t, err)
}

func TestLoad_ReadsEachProfileOnce(t *testing.T) {
	// --- Arrange ---
	a, logs := SetupAppTest(t)
	path := writeFile(t, "config.hcl", []byte(sampleHCL))
	first, err := a.Load(context.Background(), path)
	require.NoError(t, err)

	// --- Act ---
	// The file is gone, so only the cached profile can satisfy these calls.
	require.NoError(t, os.Remove(path))
	second, err := a.Load(context.Background(), path)
	require.NoError(t, err)
	f, err := a.Resolve(context.Background(), path, "png")

	// --- Assert ---
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, []string{"libpng16"}, f.Libraries.Values())
	assert.Equal(t, 1, strings.Count(logs.String(), "Profile loaded."))
}

func TestLoad_FailuresAreNotCached(t *testing.T) {
	a, _ := SetupAppTest(t)
	path := filepath.Join(t.TempDir(), "config.hcl")

	_, err := a.Load(context.Background(), path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(sampleHCL), 0o600))
	_, err = a.Load(context.Background(), path)
	assert.NoError(t, err)
}
