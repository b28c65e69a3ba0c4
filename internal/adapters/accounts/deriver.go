package accounts

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/tcfg/internal/domain"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// DeriverAdapter derives signer addresses from hex private keys
type DeriverAdapter struct{}

// NewDeriverAdapter creates a new account deriver
func NewDeriverAdapter() *DeriverAdapter {
	return &DeriverAdapter{}
}

// Address returns the checksummed address for a hex private key (0x prefix optional).
// The key itself never appears in the returned error.
func (d *DeriverAdapter) Address(privateKey string) (string, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: expected 32 hex-encoded bytes", domain.ErrInvalidPrivateKey)
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

// Ensure the adapter implements the interface
var _ usecase.AccountDeriver = (*DeriverAdapter)(nil)
