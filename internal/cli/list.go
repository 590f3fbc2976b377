package cli

import (
	"github.com/insight-platform/insight-deploy/internal/cli/render"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		contractName string
		chainID      uint64
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deployments from the registry",
		Long: `List all deployments recorded in .insight/deployments.json.

The list can be filtered by contract name or chain ID.`,
		Example: `  # List all deployments
  insight-deploy list

  # List deployments on a local Hardhat node
  insight-deploy list --chain 31337`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{
				ContractName: contractName,
				ChainID:      chainID,
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewDeploymentsRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name")
	cmd.Flags().Uint64Var(&chainID, "chain", 0, "Filter by chain ID")

	return cmd
}
