package cli

import (
	"github.com/insight-platform/insight-deploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewSignersCmd creates the signers command
func NewSignersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signers",
		Short: "List the signers available on the network",
		Long: `List the accounts configured for the selected network. The first one is the
account that deploys CourseOpeningNFT.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListSigners.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewSignersRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}
}
