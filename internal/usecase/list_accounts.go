package usecase

import (
	"context"

	internalconfig "github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

// AccountInfo describes one signing credential without exposing it
type AccountInfo struct {
	Network string
	Index   int
	Address string
	Error   error
}

// UnfundedNetwork is a remote network that resolved to no credentials
type UnfundedNetwork struct {
	Network     string
	MissingVars []string
}

// ListAccountsResult contains the derived signer addresses
type ListAccountsResult struct {
	Accounts []AccountInfo
	Missing  []UnfundedNetwork
}

// ListAccounts derives the signer address of every configured credential
type ListAccounts struct {
	loader  ConfigLoader
	deriver AccountDeriver
}

// NewListAccounts creates a new ListAccounts use case
func NewListAccounts(loader ConfigLoader, deriver AccountDeriver) *ListAccounts {
	return &ListAccounts{
		loader:  loader,
		deriver: deriver,
	}
}

// Run executes the use case
func (uc *ListAccounts) Run(ctx context.Context) (*ListAccountsResult, error) {
	cfg, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	decl := uc.loader.Declarations()

	result := &ListAccountsResult{}
	for _, name := range cfg.NetworkNames() {
		network := cfg.Networks[name]
		if config.IsLocalNetwork(name) {
			continue
		}

		if len(network.Accounts) == 0 {
			var vars []string
			for _, raw := range decl.Networks[name].Accounts {
				vars = append(vars, internalconfig.ReferencedVars(raw)...)
			}
			result.Missing = append(result.Missing, UnfundedNetwork{Network: name, MissingVars: vars})
			continue
		}

		for i, key := range network.Accounts {
			info := AccountInfo{Network: name, Index: i}
			info.Address, info.Error = uc.deriver.Address(key)
			result.Accounts = append(result.Accounts, info)
		}
	}

	return result, nil
}
