package profile

// SharedLibraryName applies SHLIBPREFIX and SHLIBSUFFIX to base.
func (p *Profile) SharedLibraryName(base string) string {
	return p.SharedLibPrefix.String() + base + p.SharedLibSuffix.String()
}

// StaticLibraryName applies LIBPREFIX and LIBSUFFIX to base.
func (p *Profile) StaticLibraryName(base string) string {
	return p.StaticLibPrefix.String() + base + p.StaticLibSuffix.String()
}

// ExecutableName applies PROGSUFFIX to base.
func (p *Profile) ExecutableName(base string) string {
	return base + p.ExecutableSuffix.String()
}
