// internal/version/version.go
package version

// Version is overridden at build time with
// -ldflags "-X collatz/internal/version.Version=vX.Y.Z".
var Version = "dev"
