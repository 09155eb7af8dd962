// Package config loads, normalizes, and validates substation configuration.
//
// It supplies repository defaults, expands tilde paths, and reads TOML
// files from ~/.config/substation/config.toml or a project-local
// substation.toml. Downstream code should always obtain settings through
// this package so it receives sanitized paths and canonical values.
package config
