// Package runner starts external commands with the parent's standard streams
// and waits for them. A command that starts and exits reports its exit code in
// a Result; a command that cannot be started at all returns a *SpawnError.
package runner
