// Package cli is responsible for parsing command-line arguments, rendering
// command output and handling process-level concerns like exit codes. It
// translates CLI flags into the application's configuration.
package cli
