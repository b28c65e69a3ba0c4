package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tcfg/internal/cli/render"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the toolchain configuration",
		Long: `Validate the configuration record and its declarations:

- unset credential and API key variables
- invalid compiler versions, chain IDs and URLs
- explorer settings for undeclared networks
- secrets written as literals instead of ${VAR} references

Exits non-zero when anything is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				if err := render.NewJSONRenderer[*checkJSON](cmd.OutOrStdout()).Render(toCheckJSON(result)); err != nil {
					return err
				}
			} else if err := render.NewCheckRenderer(cmd.OutOrStdout()).RenderCheck(result); err != nil {
				return err
			}

			if !result.OK() {
				return fmt.Errorf("configuration check failed")
			}
			return nil
		},
	}

	return cmd
}
