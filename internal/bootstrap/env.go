package bootstrap

import (
	"io"
	"strconv"

	"github.com/seblak-bujangan/seblak/internal/config"
	"github.com/seblak-bujangan/seblak/internal/logger"
	"github.com/seblak-bujangan/seblak/internal/project"
	"github.com/seblak-bujangan/seblak/internal/runner"
)

// Env carries everything an operation needs.
type Env struct {
	Layout   *project.Layout
	Settings *config.Settings
	Runner   runner.Runner
	Out      io.Writer // user-facing progress lines
	Log      *logger.Logger
}

// InstallCommand returns the package-manager invocation used by setup.
func InstallCommand(s *config.Settings, l *project.Layout) runner.Command {
	args := append([]string{"install"}, s.Dependencies...)
	return runner.Command{Name: s.PackageManager, Args: args, Dir: l.Root}
}

// LaunchCommand returns the invocation that starts the app on the configured
// port.
func LaunchCommand(s *config.Settings, l *project.Layout) runner.Command {
	return runner.Command{
		Name: s.AppCommand,
		Args: []string{"run", s.AppEntry, "--server.port", strconv.Itoa(s.Port)},
		Dir:  l.Root,
	}
}

func (e *Env) log() *logger.Logger {
	if e.Log == nil {
		return logger.Nop()
	}
	return e.Log
}
