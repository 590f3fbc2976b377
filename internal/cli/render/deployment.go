package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/insight-platform/insight-deploy/internal/domain/models"
)

// DeploymentRenderer renders a single registry entry
type DeploymentRenderer struct {
	out  io.Writer
	json bool
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer, json bool) *DeploymentRenderer {
	return &DeploymentRenderer{out: out, json: json}
}

// Render prints every field of the deployment
func (r *DeploymentRenderer) Render(d *models.Deployment) error {
	if r.json {
		return RenderJSON(r.out, d)
	}

	fmt.Fprintf(r.out, "%s\n", contractStyle.Sprint(d.ContractName))
	fmt.Fprintln(r.out, strings.Repeat("=", len(d.ContractName)))

	field := func(label, value string) {
		fmt.Fprintf(r.out, "%-14s %s\n", label+":", value)
	}

	field("ID", d.ID)
	field("Address", addressStyle.Sprint(d.Address))
	field("Network", fmt.Sprintf("%s (chain %d)", d.Network, d.ChainID))
	field("Deployer", d.Deployer)
	field("Transaction", d.TransactionHash)
	field("Block", fmt.Sprintf("%d", d.BlockNumber))
	field("Gas used", fmt.Sprintf("%d", d.GasUsed))
	field("Deployed at", d.CreatedAt.Local().Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Sprint("Constructor"))
	for i, arg := range d.Args {
		fmt.Fprintf(r.out, "  [%d] %q\n", i, arg)
	}
	if d.ConstructorArgs != "" {
		fmt.Fprintf(r.out, "  %s\n", faintStyle.Sprint(d.ConstructorArgs))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Sprint("Artifact"))
	fmt.Fprintf(r.out, "  %-12s %s\n", "Path:", d.Artifact.Path)
	fmt.Fprintf(r.out, "  %-12s %s\n", "Format:", Title(string(d.Artifact.Format)))
	fmt.Fprintf(r.out, "  %-12s %s\n", "Bytecode:", faintStyle.Sprint(d.Artifact.BytecodeHash))
	return nil
}

var _ Renderer[*models.Deployment] = (*DeploymentRenderer)(nil)
