package config

import (
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

// Environment variables referenced by the built-in declarations
const (
	EnvPrivateKey        = "PRIVATE_KEY"
	EnvJOCTAPIKey        = "JOCT_API_KEY"
	EnvJOCTAPIURL        = "API_URL"
	EnvJOCTBrowserURL    = "BROWSER_URL"
	EnvPolygonAmoyAPIKey = "POLYGON_AMOY_API_KEY"
	EnvEtherscanAPIKey   = "ETHERSCAN_API_KEY"
)

// ref renders a ${VAR} reference
func ref(name string) string {
	return "${" + name + "}"
}

// Declarations returns the built-in declaration of the toolchain config.
// Secrets are expressed as ${VAR} references and resolved by Load.
func Declarations() *config.ToolchainConfig {
	return &config.ToolchainConfig{
		Solidity: config.SolidityConfig{
			Compilers: []config.CompilerConfig{
				{
					Version: "0.8.20",
					Settings: config.CompilerSettings{
						Optimizer: config.OptimizerConfig{
							Enabled: true,
							Runs:    200,
						},
						ViaIR: true,
					},
				},
			},
		},
		Networks: map[string]config.NetworkConfig{
			config.LocalNetwork: {
				ChainID: 1337,
			},
			"JOC": {
				URL:      "https://rpc-1.japanopenchain.org:8545",
				ChainID:  81,
				Accounts: []string{ref(EnvPrivateKey)},
			},
			"JOCT": {
				URL:      "https://rpc-1.testnet.japanopenchain.org:8545",
				ChainID:  10081,
				Accounts: []string{ref(EnvPrivateKey)},
			},
			"polygonAmoy": {
				URL:      "https://rpc-amoy.polygon.technology",
				ChainID:  80002,
				Accounts: []string{ref(EnvPrivateKey)},
			},
		},
		GasReporter: config.GasReporterConfig{
			Enabled:  true,
			Currency: "USD",
		},
		ContractSizer: config.ContractSizerConfig{
			AlphaSort:         true,
			DisambiguatePaths: false,
			RunOnCompile:      true,
			Strict:            true,
			Only:              []string{},
		},
		Etherscan: config.EtherscanConfig{
			APIKey: map[string]string{
				"JOCT":        ref(EnvJOCTAPIKey),
				"polygonAmoy": ref(EnvPolygonAmoyAPIKey),
			},
			CustomChains: []config.CustomChain{
				{
					Network: "JOCT",
					ChainID: 10081,
					URLs: config.ExplorerURL{
						APIURL:     ref(EnvJOCTAPIURL),
						BrowserURL: ref(EnvJOCTBrowserURL),
					},
				},
				{
					Network: "polygonAmoy",
					ChainID: 80002,
					URLs: config.ExplorerURL{
						APIURL:     "https://api-amoy.polygonscan.com/api",
						BrowserURL: "https://amoy.polygonscan.com",
					},
				},
			},
			DefaultAPIKey: ref(EnvEtherscanAPIKey),
		},
		Coverage: config.CoverageConfig{
			ExcludeContracts: []string{"Migrations"},
			SkipFiles:        []string{"test/"},
		},
	}
}
