package config

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tcfg/internal/domain"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

func fullEnv() MapSource {
	return MapSource{
		EnvPrivateKey:        "0xabc",
		EnvJOCTAPIKey:        "key1",
		EnvJOCTAPIURL:        "https://a",
		EnvJOCTBrowserURL:    "https://b",
		EnvPolygonAmoyAPIKey: "amoy-key",
		EnvEtherscanAPIKey:   "default-key",
	}
}

func TestLoad(t *testing.T) {
	t.Run("resolves JOCT network and explorer from the environment", func(t *testing.T) {
		src := MapSource{
			"PRIVATE_KEY":  "0xabc",
			"JOCT_API_KEY": "key1",
			"API_URL":      "https://a",
			"BROWSER_URL":  "https://b",
		}

		cfg, err := Load(Declarations(), src)
		require.NoError(t, err)

		joct, ok := cfg.Networks["JOCT"]
		require.True(t, ok)
		assert.Equal(t, []string{"0xabc"}, joct.Accounts)
		assert.Equal(t, uint64(10081), joct.ChainID)

		assert.Equal(t, "key1", cfg.Etherscan.APIKey["JOCT"])
		chain, ok := cfg.Etherscan.CustomChain("JOCT")
		require.True(t, ok)
		assert.Equal(t, "https://a", chain.URLs.APIURL)
		assert.Equal(t, "https://b", chain.URLs.BrowserURL)
	})

	t.Run("unset variables degrade to empty values", func(t *testing.T) {
		cfg, err := Load(Declarations(), MapSource{})
		require.NoError(t, err)

		for _, name := range []string{"JOC", "JOCT", "polygonAmoy"} {
			assert.NotNil(t, cfg.Networks[name].Accounts, name)
			assert.Empty(t, cfg.Networks[name].Accounts, name)
		}
		assert.Equal(t, "", cfg.Etherscan.APIKey["JOCT"])
		assert.Equal(t, "", cfg.Etherscan.APIKey["polygonAmoy"])
		assert.Equal(t, "", cfg.Etherscan.DefaultAPIKey)

		chain, ok := cfg.Etherscan.CustomChain("JOCT")
		require.True(t, ok)
		assert.Empty(t, chain.URLs.APIURL)
	})

	t.Run("empty value counts as unset", func(t *testing.T) {
		src := fullEnv()
		src[EnvPrivateKey] = ""

		cfg, err := Load(Declarations(), src)
		require.NoError(t, err)
		assert.Empty(t, cfg.Networks["JOC"].Accounts)

		_, err = Load(Declarations(), src, WithStrictSecrets())
		var missing *domain.MissingEnvError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{EnvPrivateKey}, missing.Vars)
	})

	t.Run("credentials are non-empty whenever the variable is set", func(t *testing.T) {
		cfg, err := Load(Declarations(), fullEnv())
		require.NoError(t, err)

		for _, name := range cfg.NetworkNames() {
			n := cfg.Networks[name]
			if config.IsLocalNetwork(name) {
				assert.Empty(t, n.Accounts)
				continue
			}
			assert.Equal(t, []string{"0xabc"}, n.Accounts, name)
		}
	})

	t.Run("strict mode lists every unset secret", func(t *testing.T) {
		_, err := Load(Declarations(), MapSource{}, WithStrictSecrets())
		require.Error(t, err)

		var missing *domain.MissingEnvError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{EnvJOCTAPIKey, EnvPolygonAmoyAPIKey, EnvPrivateKey}, missing.Vars)
		assert.Contains(t, err.Error(), "PRIVATE_KEY")
	})

	t.Run("strict mode ignores non-secret variables", func(t *testing.T) {
		src := MapSource{
			EnvPrivateKey:        "0xabc",
			EnvJOCTAPIKey:        "key1",
			EnvPolygonAmoyAPIKey: "amoy-key",
		}

		cfg, err := Load(Declarations(), src, WithStrictSecrets())
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Etherscan.DefaultAPIKey)
	})

	t.Run("default API key is resolved but not bound to a network", func(t *testing.T) {
		cfg, err := Load(Declarations(), fullEnv())
		require.NoError(t, err)

		assert.Equal(t, "default-key", cfg.Etherscan.DefaultAPIKey)
		for network, key := range cfg.Etherscan.APIKey {
			assert.NotEqual(t, "default-key", key, network)
		}
	})

	t.Run("declarations are not mutated", func(t *testing.T) {
		decl := Declarations()
		_, err := Load(decl, fullEnv())
		require.NoError(t, err)

		assert.Equal(t, []string{"${PRIVATE_KEY}"}, decl.Networks["JOCT"].Accounts)
		assert.Equal(t, "${JOCT_API_KEY}", decl.Etherscan.APIKey["JOCT"])
	})

	t.Run("nil declarations and source", func(t *testing.T) {
		cfg, err := Load(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, cfg.Networks)
		assert.NotNil(t, cfg.Solidity.Compilers)
	})
}

func TestDeclaredCompiler(t *testing.T) {
	cfg, err := Load(Declarations(), MapSource{})
	require.NoError(t, err)

	require.Len(t, cfg.Solidity.Compilers, 1)
	c := cfg.Solidity.Compilers[0]
	assert.Equal(t, "0.8.20", c.Version)
	assert.True(t, c.Settings.Optimizer.Enabled)
	assert.Equal(t, 200, c.Settings.Optimizer.Runs)
	assert.True(t, c.Settings.ViaIR)
}

func TestDeclaredNetworks(t *testing.T) {
	decl := Declarations()

	t.Run("chain IDs are positive and unique", func(t *testing.T) {
		seen := make(map[uint64]string)
		for _, name := range decl.NetworkNames() {
			id := decl.Networks[name].ChainID
			assert.NotZero(t, id, name)
			if other, dup := seen[id]; dup {
				t.Errorf("chain ID %d declared by %s and %s", id, other, name)
			}
			seen[id] = name
		}
	})

	t.Run("only the in-process network has no url", func(t *testing.T) {
		for _, name := range decl.NetworkNames() {
			assert.Equal(t, config.IsLocalNetwork(name), decl.Networks[name].URL == "", name)
		}
	})

	t.Run("verification registry only names declared networks", func(t *testing.T) {
		for network := range decl.Etherscan.APIKey {
			assert.Contains(t, decl.Networks, network)
		}
		for _, chain := range decl.Etherscan.CustomChains {
			require.Contains(t, decl.Networks, chain.Network)
			assert.Equal(t, decl.Networks[chain.Network].ChainID, chain.ChainID)
		}
	})

	t.Run("explorer urls are populated once the environment is", func(t *testing.T) {
		cfg, err := Load(decl, fullEnv())
		require.NoError(t, err)
		for _, chain := range cfg.Etherscan.CustomChains {
			assert.NotEmpty(t, chain.URLs.APIURL, chain.Network)
			assert.NotEmpty(t, chain.URLs.BrowserURL, chain.Network)
		}
	})

	t.Run("no literal secrets", func(t *testing.T) {
		assert.Empty(t, LintSecrets(decl))
	})
}

func TestLoader(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.DiscardHandler)

	t.Run("lenient loader still reports missing secrets", func(t *testing.T) {
		l := NewLoader(Declarations(), MapSource{EnvPrivateKey: "0xabc"}, false, log)

		cfg, err := l.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"0xabc"}, cfg.Networks["JOC"].Accounts)

		assert.Equal(t, []string{EnvJOCTAPIKey, EnvPolygonAmoyAPIKey}, l.MissingSecrets(ctx))
	})

	t.Run("strict loader fails", func(t *testing.T) {
		l := NewLoader(Declarations(), MapSource{}, true, log)

		_, err := l.Load(ctx)
		var missing *domain.MissingEnvError
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("no missing secrets", func(t *testing.T) {
		l := NewLoader(Declarations(), fullEnv(), false, log)
		assert.Empty(t, l.MissingSecrets(ctx))
	})

	t.Run("declarations are returned as a copy", func(t *testing.T) {
		l := NewLoader(Declarations(), MapSource{}, false, log)

		decl := l.Declarations()
		decl.Networks["JOC"] = config.NetworkConfig{}

		assert.Equal(t, uint64(81), l.Declarations().Networks["JOC"].ChainID)
	})
}
