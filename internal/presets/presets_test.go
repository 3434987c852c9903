package presets

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/toolprofile/internal/codec"
	"github.com/specialistvlad/toolprofile/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reference = "win64-msvc2022"

func loadReference(t *testing.T) *profile.Profile {
	t.Helper()
	decl, err := Open(context.Background(), Scheme+reference)
	require.NoError(t, err)
	p, err := profile.Load(decl)
	require.NoError(t, err)
	return p
}

func TestNames(t *testing.T) {
	assert.Contains(t, Names(), reference)
}

func TestIsPreset(t *testing.T) {
	assert.True(t, IsPreset("builtin:win64-msvc2022"))
	assert.False(t, IsPreset("configs/win64-msvc2022.hcl"))
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(context.Background(), "builtin:amiga-sasc")
	assert.ErrorContains(t, err, `unknown preset "amiga-sasc"`)
}

func TestReference_CoreFields(t *testing.T) {
	p := loadReference(t)

	assert.Equal(t, "builtin:"+reference, p.Source())
	assert.Equal(t, profile.SomeText("cl"), p.CompilerExecutable)
	assert.Equal(t, profile.SomeText("x86_64"), p.TargetArchitecture)
	assert.Equal(t, profile.SomeText("#build/release"), p.BuildDirectory)
	assert.Equal(t, profile.SomeText("14.3"), p.ToolchainVersion)
	assert.Equal(t, []string{"msvcrt", "ws2_32"}, p.LibraryNames.Values())
	assert.False(t, p.LibrarySearchPaths.IsPresent(), "commented-out keys are absent")
	assert.False(t, p.StaticLibPrefix.IsPresent())
	assert.Equal(t, "libcore.dll", p.SharedLibraryName("core"))
	assert.Equal(t, "mtsutil.exe", p.ExecutableName("mtsutil"))
}

func TestReference_FlagOrderIsPreserved(t *testing.T) {
	p := loadReference(t)

	flags := p.CompileFlags.Values()
	require.NotEmpty(t, flags)
	assert.Equal(t, []string{"/nologo", "/Oi", "/Ot", "/Oy", "/Ob1"}, flags[:5])
	assert.Equal(t, "/std:c++17", flags[len(flags)-1])
	assert.Contains(t, flags, "/DSPECTRUM_SAMPLES=3")
}

func TestReference_SharedFlagsMirrorCompileFlags(t *testing.T) {
	p := loadReference(t)

	assert.True(t, p.SharedLibCompileFlags.Equal(p.CompileFlags))
	e, ok := p.Lookup(profile.KeySharedCXXFlags)
	require.True(t, ok)
	assert.Equal(t, profile.KeyCXXFlags, e.Alias)
}

func TestReference_ResolveOpenGL(t *testing.T) {
	p := loadReference(t)

	f, err := p.Resolve("opengl")

	require.NoError(t, err)
	assert.Equal(t, []string{"opengl32", "glu32", "gdi32", "user32"}, f.Libraries.Values())
	assert.False(t, f.Flags.IsPresent())
}

func TestReference_OptionalFeaturesAreNotConfigured(t *testing.T) {
	p := loadReference(t)

	for _, name := range []string{"python", "python27", "python35", "python36", "qt", "openexr", "imageio", "boost", "collada", "xerces", "fftw"} {
		t.Run(name, func(t *testing.T) {
			_, err := p.Resolve(name)
			assert.ErrorIs(t, err, profile.ErrFeatureNotConfigured)
		})
	}
	assert.Equal(t, []string{"opengl"}, p.Features())
}

func TestReference_KeepsDisabledPythonVersions(t *testing.T) {
	src, err := files.ReadFile(reference + ".hcl")
	require.NoError(t, err)

	var disabled []string
	for _, line := range strings.Split(string(src), "\n") {
		if rest, ok := strings.CutPrefix(line, "# PYTHON"); ok {
			disabled = append(disabled, "PYTHON"+strings.TrimSpace(strings.SplitN(rest, "=", 2)[0]))
		}
	}

	assert.Equal(t, []string{
		"PYTHON27LIB", "PYTHON27INCLUDE",
		"PYTHON35LIB", "PYTHON35INCLUDE",
		"PYTHON36LIB", "PYTHON36INCLUDE",
	}, disabled)
}

func TestReference_RoundTripsThroughEveryFormat(t *testing.T) {
	want := loadReference(t)

	for _, f := range codec.Formats() {
		t.Run(string(f), func(t *testing.T) {
			// --- Act ---
			out, err := codec.Encode(f, want.Declaration())
			require.NoError(t, err)
			decl, err := codec.Decode(context.Background(), f, "roundtrip", out)
			require.NoError(t, err, "encoded output:\n%s", out)
			got, err := profile.Load(decl)
			require.NoError(t, err)

			// --- Assert ---
			if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(profile.Profile{})); diff != "" {
				t.Errorf("profile mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, want.Keys(), got.Keys())
			for _, key := range want.Keys() {
				w, _ := want.Lookup(key)
				g, ok := got.Lookup(key)
				require.True(t, ok, key)
				assert.True(t, w.SameValue(g), key)
			}
		})
	}
}
