package render

import (
	"fmt"
	"io"

	"github.com/insight-platform/insight-deploy/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
)

// SignersRenderer renders the accounts available on a network
type SignersRenderer struct {
	out  io.Writer
	json bool
}

// NewSignersRenderer creates a new signers renderer
func NewSignersRenderer(out io.Writer, json bool) *SignersRenderer {
	return &SignersRenderer{out: out, json: json}
}

type signerOutput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Address  string `json:"address"`
	Deployer bool   `json:"deployer"`
}

// Render prints one row per signer; the first one deploys
func (r *SignersRenderer) Render(result *usecase.ListSignersResult) error {
	if r.json {
		rows := make([]signerOutput, len(result.Signers))
		for i, s := range result.Signers {
			rows[i] = signerOutput{
				Name:     s.Name,
				Type:     string(s.Type),
				Address:  s.Address.Hex(),
				Deployer: i == 0,
			}
		}
		return RenderJSON(r.out, rows)
	}

	if len(result.Signers) == 0 {
		fmt.Fprintf(r.out, "No signers configured for %s\n", result.Network.Name)
		return nil
	}

	fmt.Fprintf(r.out, "Signers for %s:\n\n", headerStyle.Sprint(result.Network.Name))

	t := newTable()
	t.SetOutputMirror(r.out)
	for i, s := range result.Signers {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		t.AppendRow(table.Row{
			marker,
			s.Name,
			faintStyle.Sprint(Title(string(s.Type))),
			addressStyle.Sprint(s.Address.Hex()),
		})
	}
	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, faintStyle.Sprint("* deploys CourseOpeningNFT"))
	return nil
}

var _ Renderer[*usecase.ListSignersResult] = (*SignersRenderer)(nil)
