// Package hcl provides the concrete HCL implementation of the declaration
// Decoder and Encoder interfaces defined in the `config` package. It handles
// both HCL native syntax and HCL JSON syntax, resolves references between
// top-level attributes (`SHCXXFLAGS = CXXFLAGS`) and converts the resulting
// cty values into declaration entries.
package hcl
