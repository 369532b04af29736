package bootstrap

import (
	"context"
	"fmt"

	"github.com/seblak-bujangan/seblak/internal/branding"
	"github.com/seblak-bujangan/seblak/internal/project"
)

// ExitSpawnFailed is returned by Start when the app cannot be started or the
// project could not be prepared.
const ExitSpawnFailed = 1

// Start prepares the folders and seed files, then runs the app in the
// foreground and returns the exit code this process should exit with: the
// app's own exit code, or ExitSpawnFailed if it never ran.
func Start(ctx context.Context, e *Env) int {
	log := e.log().WithComponent("start")

	if err := project.EnsureScaffold(e.Out, e.Layout); err != nil {
		log.WithError(err).Errorw("could not create folder scaffold")
		fmt.Fprintf(e.Out, "[FAIL] Preparing folders: %v\n", err)
		return ExitSpawnFailed
	}
	if err := project.EnsureSeeds(e.Out, e.Layout); err != nil {
		log.WithError(err).Errorw("could not create data files")
		fmt.Fprintf(e.Out, "[FAIL] Preparing data files: %v\n", err)
		return ExitSpawnFailed
	}

	cmd := LaunchCommand(e.Settings, e.Layout)
	fmt.Fprintf(e.Out, "Starting %s on port %d...\n", branding.DisplayName(), e.Settings.Port)
	fmt.Fprintln(e.Out, "Please wait, the application is loading...")
	fmt.Fprintln(e.Out, "Press CTRL+C to stop the application")
	log.Debugw("launching app", "command", cmd.String(), "dir", cmd.Dir)

	res, err := e.Runner.Run(ctx, cmd)
	if err != nil {
		log.WithError(err).Errorw("could not start the application", "command", cmd.String())
		fmt.Fprintf(e.Out, "[FAIL] Error starting the application: %v\n", err)
		fmt.Fprintf(e.Out, "Make sure Python and %s are installed on your system\n", e.Settings.AppCommand)
		return ExitSpawnFailed
	}

	if res.ExitCode != 0 {
		fmt.Fprintf(e.Out, "[FAIL] The application stopped with exit code %d\n", res.ExitCode)
		fmt.Fprintf(e.Out, "Make sure %s is installed by running: %s\n",
			e.Settings.AppCommand, InstallCommand(e.Settings, e.Layout))
	}
	return res.ExitCode
}
