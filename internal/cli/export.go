package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/tcfg/internal/cli/render"
	"github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format string
		output string
		reveal bool
		force  bool
	)

	formats := make([]string, 0, len(config.Formats()))
	for _, f := range config.Formats() {
		formats = append(formats, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize the configuration record",
		Long: `Serialize the configuration record for an external toolchain.

Secrets are masked unless --reveal is given. Without --output the record is
written to stdout. An existing output file is kept unless --force is given.

Examples:
  tcfg export
  tcfg export --format yaml
  tcfg export --format toml --output build/toolchain.resolved.toml --reveal
  tcfg export --output build/config.json --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
				Format: f,
				Output: output,
				Reveal: reveal,
				Force:  force,
			})
			if err != nil {
				return err
			}

			if result.Path == "" {
				_, err = cmd.OutOrStdout().Write(result.Data)
				return err
			}

			if !app.Config.JSON {
				fmt.Fprintln(cmd.ErrOrStderr(), render.FormatSuccess(fmt.Sprintf("Wrote %s config to %s", result.Format, result.Path)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatJSON), "Output format ("+strings.Join(formats, ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Do not mask credentials and API keys")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the output file if it exists")

	return cmd
}
