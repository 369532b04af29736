package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/seblak-bujangan/seblak/internal/bootstrap"
	"github.com/seblak-bujangan/seblak/internal/branding"
	"github.com/seblak-bujangan/seblak/internal/config"
	"github.com/seblak-bujangan/seblak/internal/logger"
	"github.com/seblak-bujangan/seblak/internal/project"
	"github.com/seblak-bujangan/seblak/internal/runner"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir    string
	configFile string
	verbose    bool
)

// newRunner builds the Runner used to start child processes. Tests replace it.
var newRunner = func(cmd *cobra.Command) runner.Runner {
	return &runner.ExecRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Project directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default <root>/"+branding.ConfigName()+".yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: "Bootstrap and launch " + branding.DisplayName(),
	Long: branding.DisplayName() + ` project tooling: prepares the folder layout and data files,
installs the Python dependencies, and starts the Streamlit application.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// newEnv resolves the layout, settings and logger for a command.
func newEnv(cmd *cobra.Command) (*bootstrap.Env, error) {
	layout, err := project.NewLayout(rootDir)
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(layout.Root, configFile)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(logger.Options{
		Level:   settings.LogLevel,
		Format:  settings.LogFormat,
		Verbose: verbose,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	if settings.ConfigFile != "" {
		log.Debugw("loaded config", "file", settings.ConfigFile)
	}
	return &bootstrap.Env{
		Layout:   layout,
		Settings: settings,
		Runner:   newRunner(cmd),
		Out:      cmd.OutOrStdout(),
		Log:      log,
	}, nil
}
