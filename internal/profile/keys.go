package profile

import "github.com/specialistvlad/toolprofile/internal/config"

// Keys of the core fields.
const (
	KeyBuildDir        = "BUILDDIR"
	KeyDistDir         = "DISTDIR"
	KeyCXX             = "CXX"
	KeyCC              = "CC"
	KeyCXXFlags        = "CXXFLAGS"
	KeySharedCXXFlags  = "SHCXXFLAGS"
	KeyLinkFlags       = "LINKFLAGS"
	KeyTargetArch      = "TARGET_ARCH"
	KeyToolchainVer    = "MSVC_VERSION"
	KeyBaseInclude     = "BASEINCLUDE"
	KeyBaseLibDir      = "BASELIBDIR"
	KeyBaseLib         = "BASELIB"
	KeyGLLib           = "GLLIB"
	KeySharedLibPrefix = "SHLIBPREFIX"
	KeySharedLibSuffix = "SHLIBSUFFIX"
	KeyStaticLibPrefix = "LIBPREFIX"
	KeyStaticLibSuffix = "LIBSUFFIX"
	KeyProgramSuffix   = "PROGSUFFIX"
)

// Field describes one core field of a profile.
type Field struct {
	Name     string
	Key      string
	Kind     config.Kind
	Required bool

	text func(*Profile) *Text
	list func(*Profile) *List
}

var fields = []Field{
	{Name: "BuildDirectory", Key: KeyBuildDir, Kind: config.KindString, Required: true, text: func(p *Profile) *Text { return &p.BuildDirectory }},
	{Name: "DistDirectory", Key: KeyDistDir, Kind: config.KindString, text: func(p *Profile) *Text { return &p.DistDirectory }},
	{Name: "CompilerExecutable", Key: KeyCXX, Kind: config.KindString, Required: true, text: func(p *Profile) *Text { return &p.CompilerExecutable }},
	{Name: "CCompilerExecutable", Key: KeyCC, Kind: config.KindString, text: func(p *Profile) *Text { return &p.CCompilerExecutable }},
	{Name: "CompileFlags", Key: KeyCXXFlags, Kind: config.KindList, list: func(p *Profile) *List { return &p.CompileFlags }},
	{Name: "SharedLibCompileFlags", Key: KeySharedCXXFlags, Kind: config.KindList, list: func(p *Profile) *List { return &p.SharedLibCompileFlags }},
	{Name: "LinkFlags", Key: KeyLinkFlags, Kind: config.KindList, list: func(p *Profile) *List { return &p.LinkFlags }},
	{Name: "TargetArchitecture", Key: KeyTargetArch, Kind: config.KindString, Required: true, text: func(p *Profile) *Text { return &p.TargetArchitecture }},
	{Name: "ToolchainVersion", Key: KeyToolchainVer, Kind: config.KindString, text: func(p *Profile) *Text { return &p.ToolchainVersion }},
	{Name: "IncludeSearchPaths", Key: KeyBaseInclude, Kind: config.KindList, list: func(p *Profile) *List { return &p.IncludeSearchPaths }},
	{Name: "LibrarySearchPaths", Key: KeyBaseLibDir, Kind: config.KindList, list: func(p *Profile) *List { return &p.LibrarySearchPaths }},
	{Name: "LibraryNames", Key: KeyBaseLib, Kind: config.KindList, list: func(p *Profile) *List { return &p.LibraryNames }},
	{Name: "OpenGLLibraryNames", Key: KeyGLLib, Kind: config.KindList, list: func(p *Profile) *List { return &p.OpenGLLibraryNames }},
	{Name: "SharedLibPrefix", Key: KeySharedLibPrefix, Kind: config.KindString, text: func(p *Profile) *Text { return &p.SharedLibPrefix }},
	{Name: "SharedLibSuffix", Key: KeySharedLibSuffix, Kind: config.KindString, text: func(p *Profile) *Text { return &p.SharedLibSuffix }},
	{Name: "StaticLibPrefix", Key: KeyStaticLibPrefix, Kind: config.KindString, text: func(p *Profile) *Text { return &p.StaticLibPrefix }},
	{Name: "StaticLibSuffix", Key: KeyStaticLibSuffix, Kind: config.KindString, text: func(p *Profile) *Text { return &p.StaticLibSuffix }},
	{Name: "ExecutableSuffix", Key: KeyProgramSuffix, Kind: config.KindString, text: func(p *Profile) *Text { return &p.ExecutableSuffix }},
}

// Fields returns the core fields in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// RequiredKeys returns the keys every profile must declare.
func RequiredKeys() []string {
	var keys []string
	for _, f := range fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func fieldFor(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Known target architectures. TARGET_ARCH is not restricted to these.
const (
	ArchX86    = "x86"
	ArchX86_64 = "x86_64"
	ArchARM64  = "arm64"
)

// KnownArchitecture reports whether arch is one of the known architectures.
func KnownArchitecture(arch string) bool {
	switch arch {
	case ArchX86, ArchX86_64, ArchARM64:
		return true
	}
	return false
}
