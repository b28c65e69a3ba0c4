package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// ExplorersRenderer renders the verification registry
type ExplorersRenderer struct {
	out io.Writer
}

// NewExplorersRenderer creates a new explorers renderer
func NewExplorersRenderer(out io.Writer) *ExplorersRenderer {
	return &ExplorersRenderer{out: out}
}

// RenderExplorers renders one row per network in the registry
func (r *ExplorersRenderer) RenderExplorers(result *usecase.ListExplorersResult) error {
	if len(result.Explorers) == 0 {
		fmt.Fprintln(r.out, "No explorer verification configured")
		return nil
	}

	fmt.Fprintln(r.out, "🔍 Explorer verification:")
	fmt.Fprintln(r.out)

	t := newTable("", "Network", "Chain ID", "Key", "API URL", "Browser URL")
	for _, e := range result.Explorers {
		status := okStyle.Sprint("✓")
		if !e.Ready() {
			status = badStyle.Sprint("✗")
		}

		key := faintStyle.Sprint("none")
		if e.HasAPIKey {
			key = yesNo(e.KeySet)
		}

		apiURL, browserURL := faintStyle.Sprint("(built-in)"), faintStyle.Sprint("(built-in)")
		if e.Custom {
			apiURL, browserURL = orNotSet(e.APIURL), orNotSet(e.BrowserURL)
		}

		t.AppendRow(table.Row{status, nameStyle.Sprint(e.Network), e.ChainID, key, apiURL, browserURL})
	}
	fmt.Fprintln(r.out, t.Render())

	if !result.DefaultKeySet {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, faintStyle.Sprint("default API key not set (not used by any network)"))
	}

	return nil
}
