package cli

import (
	"github.com/spf13/cobra"

	"stockcron/internal/installer"
)

func installCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the scheduler's crontab entry",
		Long: `Builds the crontab entry from config, scans the current crontab for
entries already pointing at the scheduler script, and appends the new
entry. When matching entries exist they are shown and, after
confirmation, all of them are replaced by the single new entry.
Declining the prompt leaves the crontab untouched and exits 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			confirm := installer.Confirmer(&installer.Terminal{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			})
			if yes {
				confirm = installer.Always()
			}

			ins, err := rt.installer(confirm)
			if err != nil {
				return err
			}
			_, err = ins.Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "replace an existing entry without prompting")
	return cmd
}
