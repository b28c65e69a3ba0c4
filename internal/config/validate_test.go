package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

func TestValidate(t *testing.T) {
	loaded := func(t *testing.T) *config.ToolchainConfig {
		t.Helper()
		cfg, err := Load(Declarations(), fullEnv())
		require.NoError(t, err)
		return cfg
	}

	t.Run("populated declarations are valid", func(t *testing.T) {
		assert.NoError(t, Validate(loaded(t)))
	})

	t.Run("unset explorer urls are reported", func(t *testing.T) {
		cfg, err := Load(Declarations(), MapSource{})
		require.NoError(t, err)

		err = Validate(cfg)
		require.Error(t, err)
		assert.ErrorContains(t, err, "etherscan.customChains[0].urls.apiURL: url is empty")
		assert.ErrorContains(t, err, "etherscan.customChains[0].urls.browserURL: url is empty")
	})

	tests := []struct {
		name    string
		mutate  func(cfg *config.ToolchainConfig)
		wantErr string
	}{
		{
			name: "no compilers",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Solidity.Compilers = nil
			},
			wantErr: "at least one compiler is required",
		},
		{
			name: "invalid compiler version",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Solidity.Compilers[0].Version = "latest"
			},
			wantErr: `invalid compiler version "latest"`,
		},
		{
			name: "negative optimizer runs",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Solidity.Compilers[0].Settings.Optimizer.Runs = -1
			},
			wantErr: "must not be negative",
		},
		{
			name: "zero chain ID",
			mutate: func(cfg *config.ToolchainConfig) {
				n := cfg.Networks["JOC"]
				n.ChainID = 0
				cfg.Networks["JOC"] = n
			},
			wantErr: "networks.JOC.chainId: invalid chain ID",
		},
		{
			name: "duplicate chain ID",
			mutate: func(cfg *config.ToolchainConfig) {
				n := cfg.Networks["JOC"]
				n.ChainID = 80002
				cfg.Networks["JOC"] = n
			},
			wantErr: "chain ID 80002 declared by JOC, polygonAmoy",
		},
		{
			name: "remote network without url",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Networks["sepolia"] = config.NetworkConfig{ChainID: 11155111}
			},
			wantErr: "networks.sepolia.url: remote network requires an RPC url",
		},
		{
			name: "unsupported rpc scheme",
			mutate: func(cfg *config.ToolchainConfig) {
				n := cfg.Networks["JOC"]
				n.URL = "ftp://rpc.example.com"
				cfg.Networks["JOC"] = n
			},
			wantErr: "expected http/https/ws/wss",
		},
		{
			name: "api key for undeclared network",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Etherscan.APIKey["mainnet"] = "key"
			},
			wantErr: "etherscan.apiKey.mainnet: unknown network",
		},
		{
			name: "custom chain for undeclared network",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Etherscan.CustomChains[0].Network = "mainnet"
			},
			wantErr: "unknown network: mainnet",
		},
		{
			name: "custom chain with mismatched chain ID",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Etherscan.CustomChains[0].ChainID = 1
			},
			wantErr: "chain ID mismatch",
		},
		{
			name: "duplicate custom chain",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.Etherscan.CustomChains = append(cfg.Etherscan.CustomChains, cfg.Etherscan.CustomChains[0])
			},
			wantErr: "network JOCT declared more than once",
		},
		{
			name: "gas reporter without currency",
			mutate: func(cfg *config.ToolchainConfig) {
				cfg.GasReporter.Currency = ""
			},
			wantErr: "gasReporter.currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loaded(t)
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("in-process network needs no url", func(t *testing.T) {
		cfg := loaded(t)
		require.Empty(t, cfg.Networks[config.LocalNetwork].URL)
		assert.NoError(t, Validate(cfg))
	})

	t.Run("disabled gas reporter needs no currency", func(t *testing.T) {
		cfg := loaded(t)
		cfg.GasReporter = config.GasReporterConfig{}
		assert.NoError(t, Validate(cfg))
	})
}

func TestLintSecrets(t *testing.T) {
	decl := Declarations()
	decl.Networks["polygonAmoy"] = config.NetworkConfig{
		ChainID:  80002,
		URL:      "https://rpc-amoy.polygon.technology",
		Accounts: []string{"0xdeadbeef"},
	}
	decl.Etherscan.APIKey["polygonAmoy"] = "ABCDEF123"
	decl.Etherscan.DefaultAPIKey = "literal"

	findings := LintSecrets(decl)
	require.Len(t, findings, 3)

	assert.Equal(t, "networks.polygonAmoy.accounts[0]", findings[0].Field)
	assert.Contains(t, findings[0].Message, "${POLYGON_AMOY_PRIVATE_KEY}")
	assert.Equal(t, "etherscan.apiKey.polygonAmoy", findings[1].Field)
	assert.Contains(t, findings[1].Message, "${POLYGON_AMOY_API_KEY}")
	assert.Equal(t, "etherscan.defaultApiKey", findings[2].Field)
	assert.Contains(t, findings[2].Message, "${ETHERSCAN_API_KEY}")
}

func TestLintSecretsMixedValues(t *testing.T) {
	decl := Declarations()
	decl.Networks["JOCT"] = config.NetworkConfig{
		ChainID:  10081,
		URL:      "https://rpc-1.testnet.japanopenchain.org:8545",
		Accounts: []string{"0x${PRIVATE_KEY_SUFFIX}", "${PRIVATE_KEY}"},
	}
	decl.Etherscan.APIKey["JOCT"] = "${JOCT_API_KEY}"

	findings := LintSecrets(decl)
	require.Len(t, findings, 1)
	assert.Equal(t, "networks.JOCT.accounts[0]", findings[0].Field)
	assert.Contains(t, findings[0].Message, "mixes literal text")
	assert.Contains(t, findings[0].Message, "${JOCT_PRIVATE_KEY}")
}
