// Package greeter implements the vnetemplate command: it configures logging
// from the settings file and logs the library greeting and version.
package greeter
