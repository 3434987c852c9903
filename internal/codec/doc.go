// Package codec selects a declaration format by name or file extension and
// reads or writes declarations in it. HCL native and HCL JSON are delegated
// to the `hcl` package; YAML and TOML are implemented here. Any format may be
// xz-compressed, signalled by a trailing ".xz" extension.
package codec
