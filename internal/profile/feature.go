package profile

import (
	"regexp"
	"slices"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/config"
)

// suffix is the role a key plays inside a feature component.
type suffix string

const (
	suffixLibDir  suffix = "LIBDIR"
	suffixInclude suffix = "INCLUDE"
	suffixFlags   suffix = "FLAGS"
	suffixLib     suffix = "LIB"
	suffixDir     suffix = "DIR"
)

// suffixes is ordered longest match first: XLIBDIR belongs to X, not XLIB.
var suffixes = []suffix{suffixLibDir, suffixInclude, suffixFlags, suffixLib, suffixDir}

func (s suffix) kind() config.Kind {
	if s == suffixDir {
		return config.KindString
	}
	return config.KindList
}

// reservedPrefixes belong to core fields and never form a feature.
var reservedPrefixes = []string{"BUILD", "DIST", "CXX", "SHCXX", "CC", "SHCC", "LINK", "SHLINK", "BASE", "SHLIB", "PROG"}

func reservedPrefix(prefix string) bool {
	return slices.Contains(reservedPrefixes, prefix)
}

// splitKey splits a feature key into its component prefix and suffix.
func splitKey(key string) (string, suffix, bool) {
	for _, s := range suffixes {
		if prefix, ok := strings.CutSuffix(key, string(s)); ok && prefix != "" {
			return prefix, s, true
		}
	}
	return "", "", false
}

// Spec describes a named optional subsystem.
type Spec struct {
	Name        string
	Description string
	// Prefixes are the component prefixes, in resolution order.
	Prefixes []string
	// Pattern, when set, selects every declared prefix it matches instead.
	Pattern *regexp.Regexp
}

var catalog = []Spec{
	{Name: "opengl", Description: "OpenGL rendering", Prefixes: []string{"GL"}},
	{Name: "openexr", Description: "OpenEXR images", Prefixes: []string{"OEXR"}},
	{Name: "png", Description: "PNG images", Prefixes: []string{"PNG"}},
	{Name: "jpeg", Description: "JPEG images", Prefixes: []string{"JPEG"}},
	{Name: "imageio", Description: "all image formats", Prefixes: []string{"OEXR", "PNG", "JPEG"}},
	{Name: "boost", Description: "Boost libraries", Prefixes: []string{"BOOST"}},
	{Name: "collada", Description: "COLLADA scene import", Prefixes: []string{"COLLADA"}},
	{Name: "xerces", Description: "Xerces XML parser", Prefixes: []string{"XERCES"}},
	{Name: "python", Description: "Python bindings, every version", Pattern: regexp.MustCompile(`^PYTHON[0-9]+$`)},
	{Name: "qt", Description: "Qt user interface", Prefixes: []string{"QT"}},
	{Name: "fftw", Description: "FFTW transforms", Prefixes: []string{"FFTW"}},
}

// Catalog returns the named features Resolve knows about. Names outside the
// catalog resolve against their upper-cased prefix.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// Feature is the resolved configuration of one optional subsystem. Each list
// is the concatenation of its components' declared tokens in order.
type Feature struct {
	Name               string
	Components         []string
	Flags              List
	IncludePaths       List
	Libraries          List
	LibrarySearchPaths List
	Dirs               List
}

// Resolve returns the flags, include paths, libraries and directories
// declared for a feature. It fails with ErrFeatureNotConfigured when none of
// the feature's keys are declared. A catalog feature none of whose components
// is declared falls back to its own upper-cased name as the prefix, so
// OPENGLLIB configures "opengl" when no GL key exists.
func (p *Profile) Resolve(name string) (*Feature, error) {
	lname := strings.ToLower(strings.TrimSpace(name))
	prefixes, ok := p.prefixesFor(lname)
	if !ok {
		return nil, &Error{Op: "resolve", Key: name, Err: ErrFeatureNotConfigured, Detail: "not a feature name"}
	}

	f := p.collect(lname, prefixes)
	if len(f.Components) == 0 {
		if literal, ok := literalPrefix(lname); ok && !slices.Equal(prefixes, []string{literal}) {
			f = p.collect(lname, []string{literal})
		}
	}
	if len(f.Components) == 0 {
		return nil, &Error{Op: "resolve", Key: lname, Err: ErrFeatureNotConfigured}
	}
	return f, nil
}

// collect concatenates the declared tokens of every prefix in order.
func (p *Profile) collect(name string, prefixes []string) *Feature {
	f := &Feature{Name: name}
	for _, prefix := range prefixes {
		found := false
		for _, e := range p.decl.Entries {
			pre, s, ok := splitKey(e.Key)
			if !ok || pre != prefix {
				continue
			}
			found = true
			tokens := entryTokens(e)
			switch s {
			case suffixFlags:
				f.Flags = f.Flags.concat(tokens)
			case suffixInclude:
				f.IncludePaths = f.IncludePaths.concat(tokens)
			case suffixLib:
				f.Libraries = f.Libraries.concat(tokens)
			case suffixLibDir:
				f.LibrarySearchPaths = f.LibrarySearchPaths.concat(tokens)
			case suffixDir:
				f.Dirs = f.Dirs.concat(tokens)
			}
		}
		if found {
			f.Components = append(f.Components, prefix)
		}
	}
	return f
}

// Configured reports whether Resolve would succeed for name.
func (p *Profile) Configured(name string) bool {
	_, err := p.Resolve(name)
	return err == nil
}

// Features returns the names of every configured feature: catalog features
// first, then any other declared component prefix, lower-cased. Each name is
// listed once and Resolve succeeds for all of them.
func (p *Profile) Features() []string {
	var names []string
	claimed := make(map[string]bool)
	declared := p.declaredPrefixes()
	for _, spec := range catalog {
		prefixes := p.specPrefixes(spec)
		configured := false
		for _, prefix := range prefixes {
			claimed[prefix] = true
			if slices.Contains(declared, prefix) {
				configured = true
			}
		}
		if configured {
			names = append(names, spec.Name)
		}
	}
	for _, prefix := range declared {
		name := strings.ToLower(prefix)
		if !claimed[prefix] && !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

func (p *Profile) prefixesFor(lname string) ([]string, bool) {
	if lname == "" {
		return nil, false
	}
	for _, spec := range catalog {
		if spec.Name == lname {
			return p.specPrefixes(spec), true
		}
	}
	prefix, ok := literalPrefix(lname)
	if !ok {
		return nil, false
	}
	return []string{prefix}, true
}

// literalPrefix is the component prefix a feature name stands for on its own.
func literalPrefix(lname string) (string, bool) {
	prefix := strings.ToUpper(lname)
	if !config.ValidKey(prefix) || reservedPrefix(prefix) {
		return "", false
	}
	return prefix, true
}

func (p *Profile) specPrefixes(spec Spec) []string {
	if spec.Pattern == nil {
		return spec.Prefixes
	}
	var out []string
	for _, prefix := range p.declaredPrefixes() {
		if spec.Pattern.MatchString(prefix) {
			out = append(out, prefix)
		}
	}
	return out
}

// declaredPrefixes returns the distinct feature prefixes in order of first
// declaration.
func (p *Profile) declaredPrefixes() []string {
	var out []string
	for _, e := range p.decl.Entries {
		prefix, _, ok := splitKey(e.Key)
		if !ok || reservedPrefix(prefix) || slices.Contains(out, prefix) {
			continue
		}
		out = append(out, prefix)
	}
	return out
}

func entryTokens(e *config.Entry) List {
	if e.Kind == config.KindString {
		return SomeList(e.Str)
	}
	return SomeList(e.List...)
}
