package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tcfg/internal/cli/render"
)

// NewAccountsCmd creates the accounts command
func NewAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Show signer addresses per network",
		Long: `Derive the address of every configured signing credential. Private keys
are never printed. Networks whose credential variable is unset are listed
separately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListAccounts.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*accountsJSON](cmd.OutOrStdout()).Render(toAccountsJSON(result))
			}

			return render.NewAccountsRenderer(cmd.OutOrStdout()).RenderAccounts(result)
		},
	}

	return cmd
}
