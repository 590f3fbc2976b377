package render

import (
	"fmt"
	"io"
	"slices"

	"github.com/insight-platform/insight-deploy/internal/domain/models"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// DeploymentsRenderer renders the registry grouped by chain
type DeploymentsRenderer struct {
	out  io.Writer
	json bool
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, json bool) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out, json: json}
}

// Render prints the deployment list
func (r *DeploymentsRenderer) Render(result *usecase.DeploymentListResult) error {
	if r.json {
		return RenderJSON(r.out, result.Deployments)
	}

	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	byChain := lo.GroupBy(result.Deployments, func(d *models.Deployment) uint64 { return d.ChainID })
	chains := lo.Keys(byChain)
	slices.Sort(chains)

	for i, chainID := range chains {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		deployments := byChain[chainID]
		fmt.Fprintf(r.out, "%s %s\n",
			headerStyle.Sprintf("chain %d", chainID),
			faintStyle.Sprintf("(%s)", deployments[0].Network),
		)

		t := newTable()
		t.SetOutputMirror(r.out)
		for _, d := range deployments {
			t.AppendRow(table.Row{
				"  " + contractStyle.Sprint(d.ContractName),
				addressStyle.Sprint(d.Address),
				faintStyle.Sprint(d.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			})
		}
		t.Render()
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Total: %d deployments across %d chains\n", result.Summary.Total, len(result.Summary.ByChain))
	return nil
}

var _ Renderer[*usecase.DeploymentListResult] = (*DeploymentsRenderer)(nil)
