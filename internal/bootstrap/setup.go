package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/seblak-bujangan/seblak/internal/branding"
	"github.com/seblak-bujangan/seblak/internal/project"
	"github.com/seblak-bujangan/seblak/internal/runner"
)

// Setup ensures the folder scaffold and installs the Python dependencies. The
// returned error describes why setup stopped; it has already been reported
// to the user when Setup returns.
func Setup(ctx context.Context, e *Env) error {
	log := e.log().WithComponent("setup")

	fmt.Fprintf(e.Out, "Setting up %s...\n", branding.DisplayName())
	fmt.Fprintln(e.Out, "Creating folder structure...")
	if err := project.EnsureScaffold(e.Out, e.Layout); err != nil {
		log.WithError(err).Errorw("could not create folder scaffold")
		fmt.Fprintf(e.Out, "\nSetup failed: %v\n", err)
		return err
	}

	fmt.Fprintln(e.Out, "Installing Python dependencies...")
	cmd := InstallCommand(e.Settings, e.Layout)
	fmt.Fprintf(e.Out, "  Running: %s\n", cmd)

	if err := runner.Check(ctx, e.Runner, cmd); err != nil {
		var failed *runner.CommandFailed
		if errors.As(err, &failed) {
			log.Errorw("dependency install failed", "command", failed.Command, "exit_code", failed.ExitCode)
		} else {
			log.WithError(err).Errorw("could not start package manager", "command", cmd.String())
		}
		fmt.Fprintf(e.Out, "  [FAIL] Installing Python dependencies: %v\n", err)
		fmt.Fprintf(e.Out, "  Try running it manually: %s\n", cmd)
		fmt.Fprintf(e.Out, "\nSetup failed: %v\n", err)
		return err
	}
	fmt.Fprintln(e.Out, "  [ OK ] Python dependencies installed")

	fmt.Fprintln(e.Out, "\nSetup finished.")
	fmt.Fprintf(e.Out, "Start the application with: npm start (or %s start)\n", branding.CLIName())
	return nil
}
