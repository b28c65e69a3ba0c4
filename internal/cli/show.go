package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tcfg/internal/cli/render"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved toolchain configuration",
		Long: `Show the configuration record built from the declarations, toolchain.toml
and the environment. Signing credentials and API keys are masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.ShowConfigResult](cmd.OutOrStdout()).Render(result)
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
		},
	}

	return cmd
}
