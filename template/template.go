// Package template is the public surface of VneTemplate: a placeholder API
// meant to be replaced by real library code.
package template

import "github.com/vertexnova/vnetemplate/internal/version"

// greeting is the fixed message returned by Hello.
const greeting = "Hello from VneTemplate"

// GetVersion returns the project version injected at build time. It is never empty.
func GetVersion() string {
	return version.Short()
}

// Hello returns a greeting string (minimal API placeholder).
func Hello() string {
	return greeting
}
