package cli

import (
	"fmt"

	"github.com/insight-platform/insight-deploy/internal/cli/render"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var chainID uint64

	cmd := &cobra.Command{
		Use:   "show <deployment>",
		Short: "Show detailed deployment information from the registry",
		Long: `Show detailed information about a recorded deployment.

You can specify deployments using:
- Full deployment ID: "31337/CourseOpeningNFT/0x5FbDB2315678afecb367f032d93F642f64180aa3"
- Contract address: "0x5FbDB2315678afecb367f032d93F642f64180aa3"

An address recorded on several chains resolves to the selected network's chain;
use --chain to pick another one.

Examples:
  insight-deploy show 0x5FbDB2315678afecb367f032d93F642f64180aa3
  insight-deploy show 0x5FbDB2315678afecb367f032d93F642f64180aa3 --chain 1337
  insight-deploy show 31337/CourseOpeningNFT/0x5FbDB2315678afecb367f032d93F642f64180aa3 --json`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			deployment, err := app.ShowDeployment.Run(cmd.Context(), usecase.ShowDeploymentParams{
				Ref:     args[0],
				ChainID: chainID,
			})
			if err != nil {
				return fmt.Errorf("failed to resolve deployment: %w", err)
			}

			return render.NewDeploymentRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(deployment)
		},
	}

	cmd.Flags().Uint64Var(&chainID, "chain", 0, "Chain ID to look the address up on")

	return cmd
}
