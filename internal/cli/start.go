package cli

import (
	"github.com/seblak-bujangan/seblak/internal/bootstrap"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Prepare data files and run the application",
	Long: `Creates any missing folders and data files (data/pesanan.csv, data/produk.csv),
then runs the Streamlit app in the foreground. The exit code of the app becomes
the exit code of this command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv(cmd)
		if err != nil {
			return err
		}
		if code := bootstrap.Start(cmd.Context(), env); code != 0 {
			return &ExitError{Code: code}
		}
		return nil
	},
}
