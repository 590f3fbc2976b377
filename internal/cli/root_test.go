package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/insight-platform/insight-deploy/internal/adapters/blockchain"
	"github.com/insight-platform/insight-deploy/internal/adapters/progress"
	"github.com/insight-platform/insight-deploy/internal/domain"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devAccount0 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

const localProjectTOML = `[project]
default_network = "localhost"

[networks.localhost]
rpc_url = "http://127.0.0.1:8545"
chain_id = 31337
accounts = ["alice"]

[signers.alice]
type = "dev"
index = 0
`

func init() {
	color.NoColor = true
}

func newProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func execute(t *testing.T, projectRoot string, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithDialer(t, blockchain.DialRPC, projectRoot, args...)
	return out, err
}

// executeWithDialer runs the command tree against dial and returns stdout and stderr
func executeWithDialer(t *testing.T, dial blockchain.Dialer, projectRoot string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("INSIGHT_PROJECT_ROOT", projectRoot)
	t.Setenv("INSIGHT_NETWORK", "")
	t.Setenv("INSIGHT_LOG_LEVEL", "")

	cmd := newRootCmd(dial)
	cmd.SilenceErrors = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSkipsAppInit(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"version", true},
		{"help", true},
		{"completion", true},
		{cobra.ShellCompRequestCmd, true},
		{"deploy", false},
		{"insight-deploy", false},
		{"config", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, skipsAppInit(&cobra.Command{Use: tt.name}))
		})
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "insight-deploy dev")
}

func TestConfigCmd(t *testing.T) {
	dir := newProject(t, map[string]string{"hardhat.config.js": "module.exports = {}"})

	out, err := execute(t, dir, "config", "set", "network", "localhost")
	require.NoError(t, err)
	assert.Contains(t, out, "Set network to: localhost")
	assert.FileExists(t, filepath.Join(dir, ".insight", "config.local.json"))

	out, err = execute(t, dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "network: localhost")
	assert.Contains(t, out, "source: hardhat")
	assert.Contains(t, out, "Local config:")

	_, err = execute(t, dir, "config", "set", "network", "mainnet")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetworkNotFound)

	_, err = execute(t, dir, "config", "set", "namespace", "prod")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key: namespace")

	out, err = execute(t, dir, "config", "remove", "net")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed network (was: localhost)")
}

func TestNetworksCmd(t *testing.T) {
	dir := newProject(t, map[string]string{"hardhat.config.ts": ""})

	out, err := execute(t, dir, "networks", "--offline")
	require.NoError(t, err)
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "http://127.0.0.1:8545")
}

func TestListAndShowCmd(t *testing.T) {
	dir := newProject(t, map[string]string{"hardhat.config.js": ""})

	out, err := execute(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, "No deployments found\n", out)

	_, err = execute(t, dir, "show", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSignersCmd(t *testing.T) {
	dir := newProject(t, map[string]string{"insight.toml": localProjectTOML})

	out, err := execute(t, dir, "signers", "--json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0]["name"])
	assert.Equal(t, devAccount0, rows[0]["address"])
	assert.Equal(t, true, rows[0]["deployer"])
}

func TestDeployCmd(t *testing.T) {
	t.Run("announces the deployer before resolving the contract", func(t *testing.T) {
		dir := newProject(t, map[string]string{"insight.toml": localProjectTOML})

		out, err := execute(t, dir, "--non-interactive")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
		assert.Contains(t, out, "Deploying contracts with the account: "+devAccount0)
		assert.NotContains(t, out, "Contract :")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		dir := newProject(t, map[string]string{"insight.toml": localProjectTOML})

		_, err := execute(t, dir, "deploy", "Other")
		require.Error(t, err)
	})

	t.Run("unknown network", func(t *testing.T) {
		dir := newProject(t, map[string]string{"insight.toml": localProjectTOML})

		_, err := execute(t, dir, "deploy", "--network", "mainnet", "--non-interactive")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
	})
}

func TestNewProgressSink(t *testing.T) {
	t.Setenv("INSIGHT_LOG_LEVEL", "")
	ctx := context.Background()
	event := usecase.ProgressEvent{Stage: usecase.StageDeploying, Message: "Deploying CourseOpeningNFT"}

	t.Run("json output stays silent", func(t *testing.T) {
		v := viper.New()
		v.Set("json", true)

		sink, spinnerSink := newProgressSink(v, io.Discard, io.Discard)
		assert.IsType(t, &progress.NopSink{}, sink)
		assert.Nil(t, spinnerSink)
	})

	t.Run("non-interactive logs progress only with debug", func(t *testing.T) {
		v := viper.New()
		v.Set("non_interactive", true)

		var errOut bytes.Buffer
		sink, spinnerSink := newProgressSink(v, io.Discard, &errOut)
		assert.Nil(t, spinnerSink)
		sink.OnProgress(ctx, event)
		assert.Empty(t, errOut.String())

		v.Set("debug", true)
		sink, _ = newProgressSink(v, io.Discard, &errOut)
		sink.OnProgress(ctx, event)
		assert.Contains(t, errOut.String(), "Deploying CourseOpeningNFT")
	})

	t.Run("log level from the environment", func(t *testing.T) {
		t.Setenv("INSIGHT_LOG_LEVEL", "debug")
		v := viper.New()
		v.Set("non_interactive", true)

		var errOut bytes.Buffer
		sink, _ := newProgressSink(v, io.Discard, &errOut)
		sink.OnProgress(ctx, event)
		assert.Contains(t, errOut.String(), "Deploying CourseOpeningNFT")
	})

	t.Run("interactive uses the spinner", func(t *testing.T) {
		sink, spinnerSink := newProgressSink(viper.New(), io.Discard, io.Discard)
		require.NotNil(t, spinnerSink)
		assert.Same(t, spinnerSink, sink)
	})
}
