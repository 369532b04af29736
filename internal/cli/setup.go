package cli

import (
	"github.com/seblak-bujangan/seblak/internal/bootstrap"
	"github.com/spf13/cobra"
)

var setupStrict bool

func init() {
	setupCmd.Flags().BoolVar(&setupStrict, "strict", false, "Exit with code 1 when setup fails")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create folders and install Python dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		// Failures are already reported; setup exits cleanly unless --strict.
		if err := bootstrap.Setup(cmd.Context(), env); err != nil && setupStrict {
			return &ExitError{Code: 1}
		}
		return nil
	},
}
