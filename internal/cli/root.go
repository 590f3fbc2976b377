package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/insight-platform/insight-deploy/internal/adapters/blockchain"
	"github.com/insight-platform/insight-deploy/internal/adapters/progress"
	"github.com/insight-platform/insight-deploy/internal/app"
	"github.com/insight-platform/insight-deploy/internal/config"
	domainconfig "github.com/insight-platform/insight-deploy/internal/domain/config"
	"github.com/insight-platform/insight-deploy/internal/logging"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// spinnerKey holds the spinner so commands can stop it on any exit path
	spinnerKey contextKey = "spinner"
)

// NewRootCmd creates the root command. Run without a subcommand it deploys CourseOpeningNFT.
func NewRootCmd() *cobra.Command {
	return newRootCmd(blockchain.DialRPC)
}

// newRootCmd builds the command tree around dial, which opens every node connection
func newRootCmd(dial blockchain.Dialer) *cobra.Command {
	var cancel context.CancelFunc

	rootCmd := &cobra.Command{
		Use:   "insight-deploy",
		Short: "Deploy the CourseOpeningNFT contract",
		Long: `insight-deploy deploys the CourseOpeningNFT contract with the first signer
configured for the selected network and records the deployment in .insight/.

Constructor arguments are fixed: ("CourseOpeningNFT", "CONFT", "localhost:3001/metadata/conft/").`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipsAppInit(cmd) {
				return nil
			}

			projectRoot := os.Getenv("INSIGHT_PROJECT_ROOT")
			if projectRoot == "" {
				var err error
				projectRoot, err = config.FindProjectRoot()
				if err != nil {
					return err
				}
			}

			v := config.SetupViper(projectRoot, cmd)

			sink, spinnerSink := newProgressSink(v, cmd.OutOrStdout(), cmd.ErrOrStderr())

			appInstance, err := app.InitApp(v, sink, dial)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if spinnerSink != nil {
				ctx = context.WithValue(ctx, spinnerKey, spinnerSink)
			}
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cancel != nil {
				cancel()
			}
		},
		RunE: runDeploy,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to deploy to (defaults to config or insight.toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts and the spinner")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall timeout (default 5m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "main"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	signersCmd := NewSignersCmd()
	signersCmd.GroupID = "management"
	rootCmd.AddCommand(signersCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipsAppInit reports whether a command runs without a project
func skipsAppInit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

// newProgressSink picks the sink for the output mode. The spinner is returned
// separately so commands can stop it.
func newProgressSink(v *viper.Viper, out, errOut io.Writer) (usecase.ProgressSink, *progress.SpinnerProgressReporter) {
	switch {
	case v.GetBool("json"):
		return progress.NewNopSink(), nil
	case v.GetBool("non_interactive"):
		log := logging.NewLoggerTo(errOut, &domainconfig.RuntimeConfig{Debug: v.GetBool("debug")})
		return progress.NewWriterSink(out, errOut, log), nil
	default:
		spinnerSink := progress.NewSpinnerProgressReporter(out, errOut)
		return spinnerSink, spinnerSink
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// stopSpinner halts the progress spinner if the command installed one
func stopSpinner(cmd *cobra.Command) {
	if s, ok := cmd.Context().Value(spinnerKey).(*progress.SpinnerProgressReporter); ok {
		s.Stop()
	}
}
