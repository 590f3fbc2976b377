package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
)

// NetworksRenderer renders the configured networks
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{out: out, json: json}
}

type networkOutput struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId,omitempty"`
	Current bool   `json:"current"`
	Error   string `json:"error,omitempty"`
}

// Render prints the network list
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.json {
		rows := make([]networkOutput, len(result.Networks))
		for i, n := range result.Networks {
			rows[i] = networkOutput{Name: n.Name, RPCURL: n.RPCURL, ChainID: n.ChainID, Current: n.Current}
			if n.Error != nil {
				rows[i].Error = n.Error.Error()
			}
		}
		return RenderJSON(r.out, rows)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("Available networks:"))
	fmt.Fprintln(r.out)

	t := newTable()
	t.SetOutputMirror(r.out)
	for _, n := range result.Networks {
		name := n.Name
		marker := " "
		if n.Current {
			marker = "→"
			name = color.New(color.FgGreen, color.Bold).Sprint(n.Name)
		}

		status := ""
		chainID := "-"
		switch {
		case n.Error != nil:
			status = color.New(color.FgRed).Sprintf("✗ %v", n.Error)
		case n.ChainID != 0:
			chainID = fmt.Sprintf("%d", n.ChainID)
		}

		t.AppendRow(table.Row{marker, name, chainID, faintStyle.Sprint(n.RPCURL), status})
	}
	t.Render()
	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
