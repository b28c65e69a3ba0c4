package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tcfg/internal/domain"
)

const (
	// First well-known local development key
	devKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestDeriverAdapter_Address(t *testing.T) {
	d := NewDeriverAdapter()

	t.Run("with 0x prefix", func(t *testing.T) {
		addr, err := d.Address(devKey)
		require.NoError(t, err)
		assert.Equal(t, devAddress, addr)
	})

	t.Run("without prefix and with whitespace", func(t *testing.T) {
		addr, err := d.Address("  " + devKey[2:] + "\n")
		require.NoError(t, err)
		assert.Equal(t, devAddress, addr)
	})

	t.Run("invalid key never leaks into the error", func(t *testing.T) {
		_, err := d.Address("0xabc")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidPrivateKey)
		assert.NotContains(t, err.Error(), "abc")
	})
}
