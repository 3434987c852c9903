// Package config defines the format-agnostic declaration model that every
// profile source is translated into, along with the interfaces (Decoder,
// Encoder) implemented by the concrete formats.
//
// A config.Declaration is the single input of profile.Load. Concrete
// implementations, such as for HCL, are provided in separate packages.
package config
