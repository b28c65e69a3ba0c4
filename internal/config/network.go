package config

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/tcfg/internal/domain"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

const maxSuggestions = 3

// ResolvedNetwork joins a network with its verification entry
type ResolvedNetwork struct {
	Name     string
	Network  config.NetworkConfig
	APIKey   string
	HasKey   bool
	Explorer *config.CustomChain // nil when the verifier knows the chain natively
}

// ResolveNetwork looks up a declared network by name. Unknown names return a
// domain.UnknownNetworkErr with fuzzy-matched suggestions.
func ResolveNetwork(cfg *config.ToolchainConfig, name string) (*ResolvedNetwork, error) {
	network, ok := cfg.Networks[name]
	if !ok {
		return nil, domain.UnknownNetworkErr{Name: name, Suggestions: suggestNetworks(cfg, name)}
	}

	resolved := &ResolvedNetwork{
		Name:    name,
		Network: network,
	}
	resolved.APIKey, resolved.HasKey = cfg.Etherscan.APIKey[name]
	if chain, ok := cfg.Etherscan.CustomChain(name); ok {
		resolved.Explorer = &chain
	}
	return resolved, nil
}

func suggestNetworks(cfg *config.ToolchainConfig, name string) []string {
	names := cfg.NetworkNames()
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	matches := fuzzy.Find(strings.ToLower(name), lowered)
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, names[m.Index])
	}
	return suggestions
}
