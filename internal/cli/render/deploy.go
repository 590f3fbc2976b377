package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/insight-platform/insight-deploy/internal/usecase"
)

// DeployRenderer renders the outcome of a deployment
type DeployRenderer struct {
	out  io.Writer
	json bool
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, json bool) *DeployRenderer {
	return &DeployRenderer{out: out, json: json}
}

// deployOutput is the --json shape of a deployment
type deployOutput struct {
	Network         string   `json:"network"`
	ChainID         uint64   `json:"chainId"`
	Contract        string   `json:"contract"`
	Address         string   `json:"address"`
	Deployer        string   `json:"deployer"`
	TransactionHash string   `json:"transactionHash"`
	BlockNumber     uint64   `json:"blockNumber"`
	GasUsed         uint64   `json:"gasUsed"`
	Args            []any    `json:"args"`
	DeploymentID    string   `json:"deploymentId,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// Render prints the deployed address the way the deploy script always has:
// "CourseOpeningNFT Contract : <address>"
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if r.json {
		return RenderJSON(r.out, r.toOutput(result))
	}

	contract := result.Contract
	fmt.Fprintf(r.out, "%s Contract : %s\n", result.Factory.Name, contract.Address.Hex())

	tx := contract.TransactionHash.Hex()
	if link := explorerLink(result.Network.ExplorerURL, "tx", tx); link != "" {
		tx = fmt.Sprintf("%s (%s)", tx, link)
	}
	fmt.Fprintf(r.out, "  Transaction: %s\n", tx)
	fmt.Fprintf(r.out, "  Block:       %d\n", contract.BlockNumber)
	fmt.Fprintf(r.out, "  Gas used:    %d\n", contract.GasUsed)
	fmt.Fprintf(r.out, "  Network:     %s (chain %d)\n", result.Network.Name, contract.ChainID)

	if result.Deployment != nil {
		fmt.Fprintf(r.out, "  Recorded as: %s\n", color.New(color.FgCyan).Sprint(result.Deployment.ID))
	}

	return nil
}

func (r *DeployRenderer) toOutput(result *usecase.DeployContractResult) deployOutput {
	out := deployOutput{
		Network:         result.Network.Name,
		ChainID:         result.Contract.ChainID,
		Contract:        result.Factory.Name,
		Address:         result.Contract.Address.Hex(),
		Deployer:        result.Deployer.Address.Hex(),
		TransactionHash: result.Contract.TransactionHash.Hex(),
		BlockNumber:     result.Contract.BlockNumber,
		GasUsed:         result.Contract.GasUsed,
		Args:            result.Args,
	}
	if result.Deployment != nil {
		out.DeploymentID = result.Deployment.ID
	}
	if result.RecordError != nil {
		out.Warnings = append(out.Warnings, fmt.Sprintf("failed to record deployment: %v", result.RecordError))
	}
	return out
}

var _ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
