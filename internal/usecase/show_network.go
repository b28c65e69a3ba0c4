package usecase

import (
	"context"

	internalconfig "github.com/trebuchet-org/tcfg/internal/config"
)

// ShowNetworkParams contains parameters for showing one network
type ShowNetworkParams struct {
	// Name of the network; empty prompts for a selection
	Name string
}

// ShowNetworkResult contains one resolved network with masked credentials
type ShowNetworkResult struct {
	Network *internalconfig.ResolvedNetwork
}

// ShowNetwork resolves a single network and its verification entry
type ShowNetwork struct {
	loader   ConfigLoader
	selector NetworkSelector
}

// NewShowNetwork creates a new ShowNetwork use case
func NewShowNetwork(loader ConfigLoader, selector NetworkSelector) *ShowNetwork {
	return &ShowNetwork{
		loader:   loader,
		selector: selector,
	}
}

// Run executes the use case
func (uc *ShowNetwork) Run(ctx context.Context, params ShowNetworkParams) (*ShowNetworkResult, error) {
	cfg, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	name := params.Name
	if name == "" {
		name, err = uc.selector.SelectNetwork(ctx, cfg.NetworkNames(), "Select network")
		if err != nil {
			return nil, err
		}
	}

	resolved, err := internalconfig.ResolveNetwork(internalconfig.Redacted(cfg), name)
	if err != nil {
		return nil, err
	}

	return &ShowNetworkResult{Network: resolved}, nil
}
