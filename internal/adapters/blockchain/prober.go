package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// ProberAdapter implements the ChainIDProber interface using ethclient
type ProberAdapter struct{}

// NewProberAdapter creates a new chain ID prober
func NewProberAdapter() *ProberAdapter {
	return &ProberAdapter{}
}

// ChainID dials the endpoint and asks for eth_chainId
func (p *ProberAdapter) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return chainID.Uint64(), nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainIDProber = (*ProberAdapter)(nil)
