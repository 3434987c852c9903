// Package profile implements the toolchain profile: a read-only record of the
// compiler, linker, library and filename conventions a build orchestrator
// needs for one toolchain.
//
// A profile is built once from a config.Declaration with Load and never
// mutated afterwards, so it may be shared freely between goroutines. Optional
// values are represented by Text and List, whose zero values mean "absent"
// and are distinguishable from configured-but-empty values.
//
// Optional subsystems (OpenGL, image I/O, scripting bindings, ...) are looked
// up with Resolve. A subsystem without any declared key is reported as
// ErrFeatureNotConfigured; orchestrators are expected to skip it.
package profile
