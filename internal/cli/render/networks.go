package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the list of networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks declared")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	if !result.Checked {
		for _, network := range result.Networks {
			fmt.Fprintf(r.out, "  • %s - Chain ID: %d\n", network.Name, network.ChainID)
		}
		return nil
	}

	for _, network := range result.Networks {
		switch {
		case network.Local:
			fmt.Fprintf(r.out, "  ➖ %s - Chain ID: %d (in-process)\n", network.Name, network.ChainID)
		case network.Error != nil:
			fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", network.Name, network.Error)
		default:
			fmt.Fprintf(r.out, "  ✅ %s - Chain ID: %d\n", network.Name, network.ChainID)
		}
	}

	return nil
}

// RenderNetwork renders a single resolved network
func (r *NetworksRenderer) RenderNetwork(result *usecase.ShowNetworkResult) error {
	n := result.Network

	fmt.Fprintf(r.out, "🌐 %s\n\n", nameStyle.Sprint(n.Name))

	t := newTable()
	url := orNotSet(n.Network.URL)
	if config.IsLocalNetwork(n.Name) {
		url = faintStyle.Sprint("(in-process)")
	}
	t.AppendRow(table.Row{"Chain ID", n.Network.ChainID})
	t.AppendRow(table.Row{"RPC URL", url})
	t.AppendRow(table.Row{"Accounts", accountsSummary(n.Network.Accounts)})
	if n.HasKey {
		t.AppendRow(table.Row{"API Key", orNotSet(n.APIKey)})
	}
	if n.Explorer != nil {
		t.AppendRow(table.Row{"API URL", orNotSet(n.Explorer.URLs.APIURL)})
		t.AppendRow(table.Row{"Browser URL", orNotSet(n.Explorer.URLs.BrowserURL)})
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}
