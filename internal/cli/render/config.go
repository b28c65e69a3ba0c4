package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// ConfigRenderer renders the resolved configuration record
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders every section of the record
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	cfg := result.Config

	fmt.Fprintln(r.out, "📋 Toolchain config:")
	fmt.Fprintf(r.out, "📁 project root: %s\n", getRelativePath(result.ProjectRoot))
	if result.ToolchainTOML != "" {
		fmt.Fprintf(r.out, "📦 overrides:    %s\n", getRelativePath(result.ToolchainTOML))
	} else {
		fmt.Fprintf(r.out, "📦 overrides:    %s\n", faintStyle.Sprint("(built-in declarations only)"))
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionTitle("compilers"))
	compilers := newTable("Version", "Optimizer", "Runs", "Via IR")
	for _, c := range cfg.Solidity.Compilers {
		compilers.AppendRow(table.Row{c.Version, yesNo(c.Settings.Optimizer.Enabled), c.Settings.Optimizer.Runs, yesNo(c.Settings.ViaIR)})
	}
	fmt.Fprintln(r.out, compilers.Render())
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionTitle("networks"))
	networks := newTable("Name", "Chain ID", "RPC URL", "Accounts")
	for _, name := range cfg.NetworkNames() {
		n := cfg.Networks[name]
		url := orNotSet(n.URL)
		if config.IsLocalNetwork(name) {
			url = faintStyle.Sprint("(in-process)")
		}
		networks.AppendRow(table.Row{nameStyle.Sprint(name), n.ChainID, url, accountsSummary(n.Accounts)})
	}
	fmt.Fprintln(r.out, networks.Render())
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionTitle("gas reporter"))
	fmt.Fprintf(r.out, "  enabled: %s  currency: %s\n\n", yesNo(cfg.GasReporter.Enabled), orNotSet(cfg.GasReporter.Currency))

	sizer := cfg.ContractSizer
	fmt.Fprintln(r.out, sectionTitle("contract sizer"))
	fmt.Fprintf(r.out, "  alphaSort: %s  disambiguatePaths: %s  runOnCompile: %s  strict: %s\n",
		yesNo(sizer.AlphaSort), yesNo(sizer.DisambiguatePaths), yesNo(sizer.RunOnCompile), yesNo(sizer.Strict))
	fmt.Fprintf(r.out, "  only: %s\n\n", listOrAll(sizer.Only))

	fmt.Fprintln(r.out, sectionTitle("verification"))
	explorers := newTable("Network", "API Key", "API URL", "Browser URL")
	for _, name := range cfg.NetworkNames() {
		key, hasKey := cfg.Etherscan.APIKey[name]
		chain, custom := cfg.Etherscan.CustomChain(name)
		if !hasKey && !custom {
			continue
		}
		apiURL, browserURL := faintStyle.Sprint("(built-in)"), faintStyle.Sprint("(built-in)")
		if custom {
			apiURL, browserURL = orNotSet(chain.URLs.APIURL), orNotSet(chain.URLs.BrowserURL)
		}
		explorers.AppendRow(table.Row{nameStyle.Sprint(name), orNotSet(key), apiURL, browserURL})
	}
	fmt.Fprintln(r.out, explorers.Render())
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionTitle("coverage"))
	fmt.Fprintf(r.out, "  excludeContracts: %s\n", listOrAll(cfg.Coverage.ExcludeContracts))
	fmt.Fprintf(r.out, "  skipFiles:        %s\n", listOrAll(cfg.Coverage.SkipFiles))

	return nil
}

func accountsSummary(accounts []string) string {
	if len(accounts) == 0 {
		return faintStyle.Sprint("none")
	}
	return strings.Join(accounts, ", ")
}

func listOrAll(items []string) string {
	if len(items) == 0 {
		return faintStyle.Sprint("(none)")
	}
	return strings.Join(items, ", ")
}
