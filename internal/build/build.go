// Package build holds build-time information.
package build

// Version is reported by `maven3 version` and as the build-info agent version.
// Release builds set it with -ldflags "-X go.trai.ch/maven3/internal/build.Version=...".
var Version = "dev"
