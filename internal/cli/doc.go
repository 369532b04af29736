// Package cli defines the Cobra command tree for the seblak CLI. Each file
// registers one command with the root command. Commands resolve the project
// layout and settings, then delegate to internal/bootstrap or internal/doctor.
package cli
