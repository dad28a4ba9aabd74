// Package defaults provides centralized configuration constants for envprov.
//
// This package defines the default environment name, values-file discovery,
// timeout values, and pacing parameters used across the codebase.
// Centralizing these values ensures consistency and makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/solution-accelerators/envprov/pkg/defaults"
//
//	p := provisioner.New(provisioner.WithEnvName(defaults.EnvironmentName))
//
// # Timeout Guidelines
//
// CommandTimeout is zero by default: external commands run until they
// complete or the parent context is canceled. Set a non-zero value only
// when a hung external CLI must be bounded.
package defaults
