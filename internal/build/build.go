// Package build holds values stamped in at link time.
package build

// Version is the cssmerge release. Release builds set it with
// -ldflags "-X go.trai.ch/cssmerge/internal/build.Version=<tag>".
var Version = "dev"
