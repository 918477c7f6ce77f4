// Package config loads, validates and saves the YAML settings file of the
// vnetemplate binary. Today it only carries the logging section.
package config
