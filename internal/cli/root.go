// Package cli wires the command surface: install, remove, status, version.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	// cfgFile parameter
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "stockcron",
		Short: "Manage the stock monitor's crontab entry.",
		Long: `stockcron keeps the user crontab carrying exactly one entry that runs
the stock-monitor scheduler script every 15 minutes. Existing entries for
the scheduler are detected and only replaced or removed with consent.`,
		SilenceUsage: true,
	}
)

// ExecuteContext runs the root command. This is called by main.main().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func registerCommands() {
	rootCmd.AddCommand(installCmd())
	rootCmd.AddCommand(removeCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(versionCmd())
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (yaml or json); defaults are derived from the executable's directory")

	registerCommands()
}
