package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// CheckRenderer renders configuration findings
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// RenderCheck renders every finding grouped by kind
func (r *CheckRenderer) RenderCheck(result *usecase.CheckConfigResult) error {
	if result.OK() {
		fmt.Fprintln(r.out, FormatSuccess("Configuration is valid"))
		return nil
	}

	if len(result.MissingEnv) > 0 {
		fmt.Fprintln(r.out, sectionTitle("missing environment"))
		fmt.Fprintf(r.out, "  %s\n\n", strings.Join(result.MissingEnv, ", "))
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(r.out, sectionTitle("invalid settings"))
		for _, err := range result.Errors {
			fmt.Fprintf(r.out, "  %s %v\n", badStyle.Sprint("✗"), err)
		}
		fmt.Fprintln(r.out)
	}

	if len(result.SecretFindings) > 0 {
		fmt.Fprintln(r.out, sectionTitle("literal secrets"))
		for _, f := range result.SecretFindings {
			fmt.Fprintf(r.out, "  %s %s\n", warnStyle.Sprint("!"), f.Error())
		}
		fmt.Fprintln(r.out, faintStyle.Sprint("  literal credentials in source control must be rotated"))
	}

	return nil
}
