// Package app contains the application logic behind the CLI: loading a
// profile from a file or preset, resolving features, re-encoding profiles and
// discovering profile files. It is decoupled from any specific entrypoint.
package app
