package cli

import (
	"fmt"

	"github.com/seblak-bujangan/seblak/internal/bootstrap"
	"github.com/seblak-bujangan/seblak/internal/logger"
	"github.com/seblak-bujangan/seblak/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(postinstallCmd)
}

var postinstallCmd = &cobra.Command{
	Use:   "postinstall",
	Short: "Prepare folders and fill missing package.json fields",
	Long: `Runs after npm install. Creates the data, pages, static and static/images
folders, then adds the setup/start scripts, package name and description to
package.json when they are missing. Failures are reported but never fail the
install.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			// A broken config must not fail npm install; the hook needs only the layout.
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			layout, lerr := project.NewLayout(rootDir)
			if lerr != nil {
				return nil
			}
			log, lerr := logger.New(logger.Options{Verbose: verbose, Output: cmd.ErrOrStderr()})
			if lerr != nil {
				log = logger.Nop()
			}
			env = &bootstrap.Env{Layout: layout, Out: cmd.OutOrStdout(), Log: log}
		}
		bootstrap.PostInstall(env)
		return nil
	},
}
