package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/samber/lo"
	"github.com/trebuchet-org/tcfg/internal/domain"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

var rpcSchemes = []string{"http", "https", "ws", "wss"}

// Validate checks a loaded configuration record and returns every defect
// joined into one error, or nil.
func Validate(cfg *config.ToolchainConfig) error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, domain.ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if len(cfg.Solidity.Compilers) == 0 {
		fail("solidity.compilers", "at least one compiler is required")
	}
	for i, c := range cfg.Solidity.Compilers {
		field := fmt.Sprintf("solidity.compilers[%d]", i)
		if _, err := version.NewVersion(c.Version); err != nil {
			fail(field+".version", "invalid compiler version %q", c.Version)
		}
		if c.Settings.Optimizer.Runs < 0 {
			fail(field+".settings.optimizer.runs", "must not be negative, got %d", c.Settings.Optimizer.Runs)
		}
	}

	names := cfg.NetworkNames()
	for _, name := range names {
		network := cfg.Networks[name]
		field := "networks." + name
		if network.ChainID == 0 {
			fail(field+".chainId", "%v: must be positive", domain.ErrInvalidChainID)
		}
		if network.URL == "" {
			if name != config.LocalNetwork {
				fail(field+".url", "remote network requires an RPC url")
			}
			continue
		}
		if err := validateEndpoint(network.URL, rpcSchemes); err != nil {
			fail(field+".url", "%v", err)
		}
	}

	byChain := lo.GroupBy(names, func(name string) uint64 {
		return cfg.Networks[name].ChainID
	})
	chainIDs := lo.Keys(byChain)
	slices.Sort(chainIDs)
	for _, id := range chainIDs {
		if id != 0 && len(byChain[id]) > 1 {
			fail("networks", "chain ID %d declared by %s", id, strings.Join(byChain[id], ", "))
		}
	}

	apiKeyNetworks := lo.Keys(cfg.Etherscan.APIKey)
	slices.Sort(apiKeyNetworks)
	for _, name := range apiKeyNetworks {
		if _, ok := cfg.Networks[name]; !ok {
			fail("etherscan.apiKey."+name, "%v", domain.ErrUnknownNetwork)
		}
	}

	chainNetworks := lo.Map(cfg.Etherscan.CustomChains, func(c config.CustomChain, _ int) string {
		return c.Network
	})
	for _, dup := range lo.FindDuplicates(chainNetworks) {
		fail("etherscan.customChains", "network %s declared more than once", dup)
	}
	for i, chain := range cfg.Etherscan.CustomChains {
		field := fmt.Sprintf("etherscan.customChains[%d]", i)
		network, ok := cfg.Networks[chain.Network]
		if !ok {
			fail(field+".network", "%v: %s", domain.ErrUnknownNetwork, chain.Network)
		} else if network.ChainID != chain.ChainID {
			fail(field+".chainId", "%v: explorer declares %d, network %s declares %d",
				domain.ErrChainIDMismatch, chain.ChainID, chain.Network, network.ChainID)
		}
		if err := validateEndpoint(chain.URLs.APIURL, []string{"http", "https"}); err != nil {
			fail(field+".urls.apiURL", "%v", err)
		}
		if err := validateEndpoint(chain.URLs.BrowserURL, []string{"http", "https"}); err != nil {
			fail(field+".urls.browserURL", "%v", err)
		}
	}

	if cfg.GasReporter.Enabled && cfg.GasReporter.Currency == "" {
		fail("gasReporter.currency", "required when the gas reporter is enabled")
	}

	return errors.Join(errs...)
}

func validateEndpoint(raw string, schemes []string) error {
	if raw == "" {
		return errors.New("url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if !slices.Contains(schemes, u.Scheme) || u.Host == "" {
		return fmt.Errorf("invalid url %q: expected %s", raw, strings.Join(schemes, "/"))
	}
	return nil
}

// LintSecrets reports secrets written as literals in the declarations.
// Credentials must come from the environment; any literal committed to source
// control has to be treated as leaked.
func LintSecrets(decl *config.ToolchainConfig) []domain.ValidationError {
	var findings []domain.ValidationError
	check := func(field, raw, kind, envVar string) {
		if msg := secretFinding(raw, kind, envVar); msg != "" {
			findings = append(findings, domain.ValidationError{Field: field, Message: msg})
		}
	}

	for _, name := range decl.NetworkNames() {
		for i, account := range decl.Networks[name].Accounts {
			check(fmt.Sprintf("networks.%s.accounts[%d]", name, i), account, "credential", GenerateEnvVarName(name, "PRIVATE_KEY"))
		}
	}

	apiKeyNetworks := lo.Keys(decl.Etherscan.APIKey)
	slices.Sort(apiKeyNetworks)
	for _, name := range apiKeyNetworks {
		check("etherscan.apiKey."+name, decl.Etherscan.APIKey[name], "API key", GenerateEnvVarName(name, "API_KEY"))
	}

	check("etherscan.defaultApiKey", decl.Etherscan.DefaultAPIKey, "API key", EnvEtherscanAPIKey)

	return findings
}

// secretFinding returns "" when raw is empty or a single ${VAR} reference.
// Values that embed literal text around a reference are flagged too, since
// the literal part ends up in source control.
func secretFinding(raw, kind, envVar string) string {
	if raw == "" {
		return ""
	}
	if _, ok := DetectEnvVar(raw); ok {
		return ""
	}
	if len(ReferencedVars(raw)) == 0 {
		return fmt.Sprintf("literal %s, use ${%s}", kind, envVar)
	}
	return fmt.Sprintf("%s mixes literal text with ${...}, use a single ${%s}", kind, envVar)
}
