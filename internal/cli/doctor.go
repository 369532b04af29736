package cli

import (
	"context"
	"io"

	"github.com/seblak-bujangan/seblak/internal/doctor"
	"github.com/seblak-bujangan/seblak/internal/project"
	"github.com/spf13/cobra"
)

var (
	doctorFix bool

	// lookPath and probeVersion are nil in production; tests set them.
	lookPath     func(string) (string, error)
	probeVersion func(ctx context.Context, bin string) (string, error)
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing folders and data files before checking")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the project",
	Long:  `Run diagnostic checks on the project folders, data files, package.json and Python tooling.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}

		if doctorFix {
			if err := project.EnsureScaffold(io.Discard, env.Layout); err != nil {
				return err
			}
			if err := project.EnsureSeeds(io.Discard, env.Layout); err != nil {
				return err
			}
		}

		c := &doctor.Checker{
			Layout:   env.Layout,
			Settings: env.Settings,
			Out:      env.Out,
			LookPath: lookPath,
			Probe:    probeVersion,
		}
		if report := c.Run(cmd.Context()); !report.Healthy() {
			return &ExitError{Code: 1}
		}
		return nil
	},
}
