package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tcfg/internal/domain"
)

func TestResolveNetwork(t *testing.T) {
	cfg, err := Load(Declarations(), fullEnv())
	require.NoError(t, err)

	t.Run("network with custom explorer", func(t *testing.T) {
		n, err := ResolveNetwork(cfg, "JOCT")
		require.NoError(t, err)

		assert.Equal(t, "JOCT", n.Name)
		assert.Equal(t, uint64(10081), n.Network.ChainID)
		assert.True(t, n.HasKey)
		assert.Equal(t, "key1", n.APIKey)
		require.NotNil(t, n.Explorer)
		assert.Equal(t, "https://a", n.Explorer.URLs.APIURL)
	})

	t.Run("network without verification", func(t *testing.T) {
		n, err := ResolveNetwork(cfg, "JOC")
		require.NoError(t, err)

		assert.False(t, n.HasKey)
		assert.Nil(t, n.Explorer)
	})

	t.Run("mistyped name suggests close matches", func(t *testing.T) {
		_, err := ResolveNetwork(cfg, "JCT")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownNetwork))

		var unknown domain.UnknownNetworkErr
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, []string{"JOCT"}, unknown.Suggestions)
		assert.Contains(t, err.Error(), "did you mean: JOCT?")
	})

	t.Run("matching ignores case", func(t *testing.T) {
		_, err := ResolveNetwork(cfg, "polygonamoy")

		var unknown domain.UnknownNetworkErr
		require.ErrorAs(t, err, &unknown)
		assert.Contains(t, unknown.Suggestions, "polygonAmoy")
	})

	t.Run("no suggestions", func(t *testing.T) {
		_, err := ResolveNetwork(cfg, "zzz")
		assert.EqualError(t, err, "network 'zzz' is not declared")
	})
}
