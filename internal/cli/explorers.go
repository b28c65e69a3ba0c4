package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tcfg/internal/cli/render"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// NewExplorersCmd creates the explorers command
func NewExplorersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explorers",
		Short: "List explorer verification settings",
		Long: `List the networks that have an explorer API key or custom explorer
endpoints, and whether verification can run for each of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListExplorers.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.ListExplorersResult](cmd.OutOrStdout()).Render(result)
			}

			return render.NewExplorersRenderer(cmd.OutOrStdout()).RenderExplorers(result)
		},
	}

	return cmd
}
