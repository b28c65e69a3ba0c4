package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// AccountsRenderer renders derived signer addresses
type AccountsRenderer struct {
	out io.Writer
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer) *AccountsRenderer {
	return &AccountsRenderer{out: out}
}

// RenderAccounts renders one row per credential and lists networks without any
func (r *AccountsRenderer) RenderAccounts(result *usecase.ListAccountsResult) error {
	if len(result.Accounts) > 0 {
		fmt.Fprintln(r.out, "🔑 Signers:")
		fmt.Fprintln(r.out)

		t := newTable("Network", "#", "Address")
		for _, a := range result.Accounts {
			addr := a.Address
			if a.Error != nil {
				addr = badStyle.Sprint(a.Error.Error())
			}
			t.AppendRow(table.Row{nameStyle.Sprint(a.Network), a.Index, addr})
		}
		fmt.Fprintln(r.out, t.Render())
	}

	if len(result.Missing) > 0 {
		if len(result.Accounts) > 0 {
			fmt.Fprintln(r.out)
		}
		for _, m := range result.Missing {
			hint := ""
			if len(m.MissingVars) > 0 {
				hint = fmt.Sprintf(" (set %s)", strings.Join(m.MissingVars, ", "))
			}
			fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s has no signing credential%s", m.Network, hint)))
		}
	}

	if len(result.Accounts) == 0 && len(result.Missing) == 0 {
		fmt.Fprintln(r.out, "No remote networks declared")
	}

	return nil
}
