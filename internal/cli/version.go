package cli

import (
	"fmt"

	"github.com/insight-platform/insight-deploy/internal/config"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of insight-deploy",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "insight-deploy %s (commit %s, built %s)\n", config.Version, config.Commit, config.Date)
		},
	}
}
