package cli

import (
	"github.com/spf13/cobra"

	"stockcron/internal/installer"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the installed entry and the next run times",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			// status never prompts; read-only.
			ins, err := rt.installer(installer.Always())
			if err != nil {
				return err
			}
			return ins.Status(cmd.Context())
		},
	}
}
