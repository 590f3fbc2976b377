package cli

import (
	"github.com/insight-platform/insight-deploy/internal/cli/render"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Deploy CourseOpeningNFT (same as running without a command)",
		Long: `Deploy the CourseOpeningNFT contract.

The first signer configured for the network is the deployer. On networks that are
not local development chains the deployment asks for confirmation unless
--non-interactive is set.

Examples:
  insight-deploy deploy
  insight-deploy deploy --network sepolia
  insight-deploy deploy -n sepolia --non-interactive --json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runDeploy,
	}
}

func runDeploy(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{})
	stopSpinner(cmd)
	if err != nil {
		return err
	}

	renderer := render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.JSON)
	return renderer.Render(result)
}
