// Package config resolves the settings shared by every command: the port and
// entry point of the downstream app, the package manager used by setup, and
// logging options. Values come from defaults, an optional seblak.yaml in the
// project root, a .env file, and SEBLAK_* environment variables, in
// increasing order of precedence.
package config
