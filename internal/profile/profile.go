package profile

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/toolprofile/internal/config"
)

// Profile is the loaded toolchain profile. Core fields are exposed directly;
// every declared key, core or not, stays reachable through Lookup.
type Profile struct {
	BuildDirectory        Text
	DistDirectory         Text
	CompilerExecutable    Text
	CCompilerExecutable   Text
	CompileFlags          List
	SharedLibCompileFlags List
	LinkFlags             List
	TargetArchitecture    Text
	ToolchainVersion      Text
	IncludeSearchPaths    List
	LibrarySearchPaths    List
	LibraryNames          List
	OpenGLLibraryNames    List
	SharedLibPrefix       Text
	SharedLibSuffix       Text
	StaticLibPrefix       Text
	StaticLibSuffix       Text
	ExecutableSuffix      Text

	decl *config.Declaration
}

// Load builds a profile from a declaration. It fails with ErrMalformedProfile
// when a required key is missing, a key is not an UPPERCASE_IDENTIFIER, a key
// is declared twice or a value has the wrong shape. Every problem found is
// reported; the returned error is an errors.Join of *Error values.
func Load(decl *config.Declaration) (*Profile, error) {
	if decl == nil {
		return nil, &Error{Op: "load", Err: ErrMalformedProfile, Detail: "no declaration"}
	}

	p := &Profile{decl: &config.Declaration{Source: decl.Source}}
	var errs []error
	seen := make(map[string]bool, len(decl.Entries))
	for _, e := range decl.Entries {
		switch {
		case !config.ValidKey(e.Key):
			errs = append(errs, malformed(e, "key is not an UPPERCASE_IDENTIFIER"))
			continue
		case seen[e.Key]:
			errs = append(errs, malformed(e, "key is declared twice"))
			continue
		}
		seen[e.Key] = true
		if want, ok := expectedKind(e.Key); ok && e.Kind != want {
			errs = append(errs, malformed(e, fmt.Sprintf("expected a %s, got a %s", want, e.Kind)))
			continue
		}
		p.decl.Entries = append(p.decl.Entries, e.Clone())
	}

	for _, f := range fields {
		e, ok := p.decl.Lookup(f.Key)
		if !ok {
			if f.Required && !seen[f.Key] {
				errs = append(errs, &Error{Op: "load", Key: f.Key, Err: ErrMalformedProfile, Detail: "required key is missing"})
			}
			continue
		}
		switch f.Kind {
		case config.KindString:
			*f.text(p) = SomeText(e.Str)
		case config.KindList:
			*f.list(p) = SomeList(e.List...)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return p, nil
}

// expectedKind returns the shape a key must have: the core field's kind, or
// the kind implied by a feature key's suffix.
func expectedKind(key string) (config.Kind, bool) {
	if f, ok := fieldFor(key); ok {
		return f.Kind, true
	}
	if prefix, suffix, ok := splitKey(key); ok && !reservedPrefix(prefix) {
		return suffix.kind(), true
	}
	return 0, false
}

func malformed(e *config.Entry, detail string) error {
	return &Error{Op: "load", Key: e.Key, Pos: e.Pos, Err: ErrMalformedProfile, Detail: detail}
}

// Source names where the profile was declared.
func (p *Profile) Source() string {
	return p.decl.Source
}

// Keys returns every declared key in declaration order.
func (p *Profile) Keys() []string {
	return p.decl.Keys()
}

// Lookup returns a copy of the entry declared for key.
func (p *Profile) Lookup(key string) (*config.Entry, bool) {
	e, ok := p.decl.Lookup(key)
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Declaration returns a copy of the declaration the profile was loaded from,
// suitable for re-encoding.
func (p *Profile) Declaration() *config.Declaration {
	out := &config.Declaration{Source: p.decl.Source, Entries: make([]*config.Entry, len(p.decl.Entries))}
	for i, e := range p.decl.Entries {
		out.Entries[i] = e.Clone()
	}
	return out
}
