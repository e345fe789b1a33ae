package cli

import (
	"github.com/spf13/cobra"

	"stockcron/internal/installer"
)

func removeCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the scheduler's crontab entry",
		Long: `Deletes every crontab entry pointing at the scheduler script, after
confirmation. An absent entry is a successful no-op.`,
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
			_, err = ins.Remove(cmd.Context())
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "remove without prompting")
	return cmd
}
