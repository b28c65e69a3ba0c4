package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tcfg/internal/domain"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

func TestShowNetwork(t *testing.T) {
	t.Run("named network with masked secrets", func(t *testing.T) {
		selector := new(MockNetworkSelector)
		uc := usecase.NewShowNetwork(newLoader(fullEnv(), false), selector)

		result, err := uc.Run(context.Background(), usecase.ShowNetworkParams{Name: "JOCT"})
		require.NoError(t, err)

		n := result.Network
		assert.Equal(t, "JOCT", n.Name)
		assert.Equal(t, []string{"0xab…"}, n.Network.Accounts)
		assert.True(t, n.HasKey)
		assert.Equal(t, "****", n.APIKey)
		require.NotNil(t, n.Explorer)
		assert.Equal(t, "https://b", n.Explorer.URLs.BrowserURL)

		selector.AssertNotCalled(t, "SelectNetwork", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("prompts when no name is given", func(t *testing.T) {
		selector := new(MockNetworkSelector)
		selector.On("SelectNetwork", mock.Anything, []string{"JOC", "JOCT", "hardhat", "polygonAmoy"}, mock.Anything).Return("polygonAmoy", nil)

		uc := usecase.NewShowNetwork(newLoader(fullEnv(), false), selector)
		result, err := uc.Run(context.Background(), usecase.ShowNetworkParams{})
		require.NoError(t, err)

		assert.Equal(t, "polygonAmoy", result.Network.Name)
		assert.Equal(t, uint64(80002), result.Network.Network.ChainID)
		selector.AssertExpectations(t)
	})

	t.Run("selection error is returned", func(t *testing.T) {
		selector := new(MockNetworkSelector)
		selector.On("SelectNetwork", mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrNonInteractive)

		uc := usecase.NewShowNetwork(newLoader(fullEnv(), false), selector)
		_, err := uc.Run(context.Background(), usecase.ShowNetworkParams{})
		assert.True(t, errors.Is(err, domain.ErrNonInteractive))
	})

	t.Run("unknown network", func(t *testing.T) {
		uc := usecase.NewShowNetwork(newLoader(fullEnv(), false), new(MockNetworkSelector))

		_, err := uc.Run(context.Background(), usecase.ShowNetworkParams{Name: "JOCX"})
		assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
	})
}
