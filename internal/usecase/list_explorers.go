package usecase

import (
	"context"
)

// ExplorerEntry is the verification status of one network
type ExplorerEntry struct {
	Network    string
	ChainID    uint64
	HasAPIKey  bool // an API key is declared for the network
	KeySet     bool // the declared key resolved to a non-empty value
	Custom     bool // explorer endpoints are declared as a custom chain
	APIURL     string
	BrowserURL string
}

// Ready reports whether verification can run for the network
func (e ExplorerEntry) Ready() bool {
	if !e.KeySet {
		return false
	}
	return !e.Custom || (e.APIURL != "" && e.BrowserURL != "")
}

// ListExplorersResult contains the verification registry
type ListExplorersResult struct {
	Explorers     []ExplorerEntry
	DefaultKeySet bool
}

// ListExplorers is a use case for listing the explorer verification registry
type ListExplorers struct {
	loader ConfigLoader
}

// NewListExplorers creates a new ListExplorers use case
func NewListExplorers(loader ConfigLoader) *ListExplorers {
	return &ListExplorers{loader: loader}
}

// Run executes the use case. Networks without an API key or custom chain are
// not part of the registry and are omitted.
func (uc *ListExplorers) Run(ctx context.Context) (*ListExplorersResult, error) {
	cfg, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	var entries []ExplorerEntry
	for _, name := range cfg.NetworkNames() {
		key, hasKey := cfg.Etherscan.APIKey[name]
		chain, custom := cfg.Etherscan.CustomChain(name)
		if !hasKey && !custom {
			continue
		}
		entries = append(entries, ExplorerEntry{
			Network:    name,
			ChainID:    cfg.Networks[name].ChainID,
			HasAPIKey:  hasKey,
			KeySet:     key != "",
			Custom:     custom,
			APIURL:     chain.URLs.APIURL,
			BrowserURL: chain.URLs.BrowserURL,
		})
	}

	return &ListExplorersResult{
		Explorers:     entries,
		DefaultKeySet: cfg.Etherscan.DefaultAPIKey != "",
	}, nil
}
