package profile

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal returns the smallest loadable declaration plus extra entries.
func minimal(extra ...*config.Entry) *config.Declaration {
	return &config.Declaration{Source: "test", Entries: append([]*config.Entry{
		config.NewString(KeyBuildDir, "#build/release"),
		config.NewString(KeyCXX, "cl"),
		config.NewString(KeyTargetArch, "x86_64"),
	}, extra...)}
}

func without(decl *config.Declaration, key string) *config.Declaration {
	out := &config.Declaration{Source: decl.Source}
	for _, e := range decl.Entries {
		if e.Key != key {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

func loadErrors(err error) []*Error {
	var out []*Error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var pe *Error
			if errors.As(e, &pe) {
				out = append(out, pe)
			}
		}
	}
	return out
}

func TestLoad_Minimal(t *testing.T) {
	// --- Act ---
	p, err := Load(minimal())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "test", p.Source())
	assert.Equal(t, SomeText("cl"), p.CompilerExecutable)
	assert.Equal(t, SomeText("x86_64"), p.TargetArchitecture)
	assert.Equal(t, SomeText("#build/release"), p.BuildDirectory)
	assert.False(t, p.DistDirectory.IsPresent())
	assert.False(t, p.CompileFlags.IsPresent())
	assert.Nil(t, p.CompileFlags.Values())
}

func TestLoad_MissingRequiredKey(t *testing.T) {
	for _, key := range RequiredKeys() {
		t.Run(key, func(t *testing.T) {
			// --- Arrange ---
			decl := without(minimal(), key)

			// --- Act ---
			p, err := Load(decl)

			// --- Assert ---
			require.Nil(t, p)
			require.ErrorIs(t, err, ErrMalformedProfile)
			assert.Contains(t, err.Error(), key)
			assert.Contains(t, err.Error(), "required key is missing")
		})
	}
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	decl := &config.Declaration{Entries: []*config.Entry{
		config.NewList(KeyCXXFlags, "/nologo"),
	}}

	_, err := Load(decl)

	require.ErrorIs(t, err, ErrMalformedProfile)
	errs := loadErrors(err)
	require.Len(t, errs, 3)
	keys := []string{errs[0].Key, errs[1].Key, errs[2].Key}
	assert.ElementsMatch(t, RequiredKeys(), keys)
}

func TestLoad_Malformed(t *testing.T) {
	testCases := []struct {
		name    string
		entry   *config.Entry
		wantMsg string
	}{
		{"list where string expected", config.NewList(KeyCC, "cl"), "expected a string, got a list of strings"},
		{"string where list expected", config.NewString(KeyLinkFlags, "/nologo"), "expected a list of strings, got a string"},
		{"feature list key as string", config.NewString("BOOSTLIB", "boost_system"), "BOOSTLIB"},
		{"feature dir key as list", config.NewList("QTDIR", "C:/Qt"), "QTDIR"},
		{"lowercase key", config.NewString("cxx", "cl"), "UPPERCASE_IDENTIFIER"},
		{"duplicate key", config.NewString(KeyCXX, "clang-cl"), "declared twice"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(minimal(tc.entry))

			require.ErrorIs(t, err, ErrMalformedProfile)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoad_RequiredKeyWithWrongShapeIsReportedOnce(t *testing.T) {
	decl := without(minimal(), KeyCXX)
	decl.Entries = append(decl.Entries, config.NewList(KeyCXX, "cl"))

	_, err := Load(decl)

	require.ErrorIs(t, err, ErrMalformedProfile)
	assert.Len(t, loadErrors(err), 1)
	assert.NotContains(t, err.Error(), "required key is missing")
}

func TestLoad_NilDeclaration(t *testing.T) {
	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrMalformedProfile)
}

func TestLoad_ErrorCarriesPosition(t *testing.T) {
	bad := config.NewList(KeyCC, "cl")
	bad.Pos = "config.hcl:7"

	_, err := Load(minimal(bad))

	assert.EqualError(t, err, "load CC (config.hcl:7): malformed profile: expected a string, got a list of strings")
}

func TestLoad_UnknownKeysAreRetained(t *testing.T) {
	p, err := Load(minimal(
		config.NewString("VENDOR_NOTE", "internal"),
		config.NewList("EXTRA_DEFINES", "/DFOO"),
	))
	require.NoError(t, err)

	assert.Equal(t, []string{KeyBuildDir, KeyCXX, KeyTargetArch, "VENDOR_NOTE", "EXTRA_DEFINES"}, p.Keys())
	e, ok := p.Lookup("EXTRA_DEFINES")
	require.True(t, ok)
	assert.Equal(t, []string{"/DFOO"}, e.List)
}

func TestLoad_PresentEmptyDiffersFromAbsent(t *testing.T) {
	p, err := Load(minimal(config.NewList(KeyBaseLibDir)))
	require.NoError(t, err)

	assert.True(t, p.LibrarySearchPaths.IsPresent())
	assert.Equal(t, 0, p.LibrarySearchPaths.Len())
	assert.NotNil(t, p.LibrarySearchPaths.Values())
	assert.False(t, p.IncludeSearchPaths.IsPresent())
}

func TestProfile_IsolatedFromDeclaration(t *testing.T) {
	// --- Arrange ---
	flags := config.NewList(KeyCXXFlags, "/nologo", "/MD")
	decl := minimal(flags)
	p, err := Load(decl)
	require.NoError(t, err)

	// --- Act ---
	flags.List[0] = "/changed"
	p.CompileFlags.Values()[1] = "/changed"
	e, _ := p.Lookup(KeyCXXFlags)
	e.List[0] = "/changed"
	p.Declaration().Entries[3].List[0] = "/changed"

	// --- Assert ---
	assert.Equal(t, []string{"/nologo", "/MD"}, p.CompileFlags.Values())
	again, _ := p.Lookup(KeyCXXFlags)
	assert.Equal(t, []string{"/nologo", "/MD"}, again.List)
}

func TestProfile_AliasedFlagsAreEqualAndIndependent(t *testing.T) {
	shared := config.NewList(KeySharedCXXFlags, "/nologo", "/MD")
	shared.Alias = KeyCXXFlags
	p, err := Load(minimal(config.NewList(KeyCXXFlags, "/nologo", "/MD"), shared))
	require.NoError(t, err)

	assert.True(t, p.CompileFlags.Equal(p.SharedLibCompileFlags))
	compile := p.CompileFlags.Values()
	compile[0] = "/changed"
	assert.Equal(t, []string{"/nologo", "/MD"}, p.SharedLibCompileFlags.Values())
}

func TestProfile_ConcurrentReaders(t *testing.T) {
	p, err := Load(minimal(
		config.NewList(KeyGLLib, "opengl32", "glu32"),
		config.NewList("PNGLIB", "libpng16"),
	))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := p.Resolve("opengl")
			assert.NoError(t, err)
			assert.Equal(t, []string{"opengl32", "glu32"}, f.Libraries.Values())
			assert.Equal(t, []string{"opengl", "png", "imageio"}, p.Features())
		}()
	}
	wg.Wait()
}

func TestError_Format(t *testing.T) {
	err := &Error{Op: "resolve", Key: "qt", Err: ErrFeatureNotConfigured}

	assert.Equal(t, "resolve qt: feature not configured", err.Error())
	assert.True(t, strings.HasPrefix((&Error{Op: "load", Err: ErrMalformedProfile}).Error(), "load: "))
}
