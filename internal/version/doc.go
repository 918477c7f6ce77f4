// Package version exposes build metadata for VneTemplate.
//
// Version, Commit and BuildTime are injected at build time, for example:
//
//	go build -ldflags "-X github.com/vertexnova/vnetemplate/internal/version.Version=1.2.0"
//
// They default to local-build values. Short and Full render them for the
// provider, CLI output and logs.
package version
