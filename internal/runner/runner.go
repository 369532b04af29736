package runner

import (
	"context"
	"fmt"
	"strings"
)

// Command describes a process to start.
type Command struct {
	Name string
	Args []string
	Dir  string   // working directory; empty means the current one
	Env  []string // extra KEY=VALUE pairs appended to the inherited environment
}

// String returns the command line as a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result captures how a started command ended.
type Result struct {
	ExitCode int
}

// Runner starts a command and waits for it to exit.
type Runner interface {
	// Run returns a Result for any command that started, including ones
	// that exit non-zero. The error is non-nil only when the command could
	// not be started.
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Func adapts an ordinary function to the Runner interface.
type Func func(ctx context.Context, cmd Command) (*Result, error)

// Run calls f(ctx, cmd).
func (f Func) Run(ctx context.Context, cmd Command) (*Result, error) {
	return f(ctx, cmd)
}

// Check runs cmd and converts a non-zero exit into a *CommandFailed.
func Check(ctx context.Context, r Runner, cmd Command) error {
	res, err := r.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &CommandFailed{Command: cmd.String(), ExitCode: res.ExitCode}
	}
	return nil
}

// CommandFailed reports a command that exited with a non-zero code.
type CommandFailed struct {
	Command  string
	ExitCode int
}

func (e *CommandFailed) Error() string {
	return fmt.Sprintf("command %q failed with code %d", e.Command, e.ExitCode)
}

// SpawnError reports a command that could not be started.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
