// Package version contains the variable holding the client's version number.
package version

// Version contains the client's version number. The string found in
// the code is just a placeholder for the actual value inserted at build time
// with -ldflags "-X github.com/egeuysall/summit-token/internal/version.Version=<tag>".
var Version = "v0.0.0-dev"
