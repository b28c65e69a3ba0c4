package config

import (
	"maps"
	"slices"
)

// LocalNetwork is the name of the in-process test network. It is the only
// network allowed to omit an RPC URL.
const LocalNetwork = "hardhat"

// ToolchainConfig is the configuration record handed to the contract toolchain.
// It is built once by the loader and never mutated afterwards; use Clone to
// obtain an independent copy.
type ToolchainConfig struct {
	Solidity      SolidityConfig           `json:"solidity" toml:"solidity" yaml:"solidity"`
	Networks      map[string]NetworkConfig `json:"networks" toml:"networks" yaml:"networks"`
	GasReporter   GasReporterConfig        `json:"gasReporter" toml:"gasReporter" yaml:"gasReporter"`
	ContractSizer ContractSizerConfig      `json:"contractSizer" toml:"contractSizer" yaml:"contractSizer"`
	Etherscan     EtherscanConfig          `json:"etherscan" toml:"etherscan" yaml:"etherscan"`
	Coverage      CoverageConfig           `json:"coverage" toml:"coverage" yaml:"coverage"`
}

// SolidityConfig selects one or more compilers
type SolidityConfig struct {
	Compilers []CompilerConfig `json:"compilers" toml:"compilers" yaml:"compilers"`
}

// CompilerConfig is a (version, settings) pair
type CompilerConfig struct {
	Version  string           `json:"version" toml:"version" yaml:"version"`
	Settings CompilerSettings `json:"settings" toml:"settings" yaml:"settings"`
}

// CompilerSettings holds the optimizer and IR pipeline switches passed to solc
type CompilerSettings struct {
	Optimizer OptimizerConfig `json:"optimizer" toml:"optimizer" yaml:"optimizer"`
	ViaIR     bool            `json:"viaIR" toml:"viaIR" yaml:"viaIR"`
}

// OptimizerConfig trades code size for execution cost
type OptimizerConfig struct {
	Enabled bool `json:"enabled" toml:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" toml:"runs" yaml:"runs"`
}

// NetworkConfig describes a target network
type NetworkConfig struct {
	ChainID  uint64   `json:"chainId" toml:"chainId" yaml:"chainId"`
	URL      string   `json:"url" toml:"url" yaml:"url"`
	Accounts []string `json:"accounts" toml:"accounts" yaml:"accounts"` //nolint:gosec // values come from the environment
}

// IsLocalNetwork reports whether name is the in-process network. A remote
// network whose URL resolved to empty is still remote.
func IsLocalNetwork(name string) bool {
	return name == LocalNetwork
}

// GasReporterConfig configures the gas usage report
type GasReporterConfig struct {
	Enabled  bool   `json:"enabled" toml:"enabled" yaml:"enabled"`
	Currency string `json:"currency" toml:"currency" yaml:"currency"`
}

// ContractSizerConfig configures the contract size report
type ContractSizerConfig struct {
	AlphaSort         bool     `json:"alphaSort" toml:"alphaSort" yaml:"alphaSort"`
	DisambiguatePaths bool     `json:"disambiguatePaths" toml:"disambiguatePaths" yaml:"disambiguatePaths"`
	RunOnCompile      bool     `json:"runOnCompile" toml:"runOnCompile" yaml:"runOnCompile"`
	Strict            bool     `json:"strict" toml:"strict" yaml:"strict"`
	Only              []string `json:"only" toml:"only" yaml:"only"`
}

// EtherscanConfig is the explorer verification registry.
// APIKey is keyed by network name. DefaultAPIKey is kept apart from the
// per-network registry and is not used for any network.
type EtherscanConfig struct {
	APIKey        map[string]string `json:"apiKey" toml:"apiKey" yaml:"apiKey"`
	CustomChains  []CustomChain     `json:"customChains" toml:"customChains" yaml:"customChains"`
	DefaultAPIKey string            `json:"defaultApiKey" toml:"defaultApiKey" yaml:"defaultApiKey"`
}

// CustomChain describes an explorer that is not built into the verifier
type CustomChain struct {
	Network string      `json:"network" toml:"network" yaml:"network"`
	ChainID uint64      `json:"chainId" toml:"chainId" yaml:"chainId"`
	URLs    ExplorerURL `json:"urls" toml:"urls" yaml:"urls"`
}

// ExplorerURL holds the API and browser endpoints of an explorer
type ExplorerURL struct {
	APIURL     string `json:"apiURL" toml:"apiURL" yaml:"apiURL"`
	BrowserURL string `json:"browserURL" toml:"browserURL" yaml:"browserURL"`
}

// CoverageConfig configures coverage instrumentation
type CoverageConfig struct {
	ExcludeContracts []string `json:"excludeContracts" toml:"excludeContracts" yaml:"excludeContracts"`
	SkipFiles        []string `json:"skipFiles" toml:"skipFiles" yaml:"skipFiles"`
}

// CustomChain returns the custom chain descriptor for a network
func (e EtherscanConfig) CustomChain(network string) (CustomChain, bool) {
	for _, c := range e.CustomChains {
		if c.Network == network {
			return c, true
		}
	}
	return CustomChain{}, false
}

// NetworkNames returns the declared network names in sorted order
func (c *ToolchainConfig) NetworkNames() []string {
	return slices.Sorted(maps.Keys(c.Networks))
}

// Clone returns a deep copy of the record
func (c *ToolchainConfig) Clone() *ToolchainConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.Solidity.Compilers = slices.Clone(c.Solidity.Compilers)

	out.Networks = make(map[string]NetworkConfig, len(c.Networks))
	for name, n := range c.Networks {
		n.Accounts = slices.Clone(n.Accounts)
		out.Networks[name] = n
	}

	out.ContractSizer.Only = slices.Clone(c.ContractSizer.Only)
	out.Etherscan.APIKey = maps.Clone(c.Etherscan.APIKey)
	out.Etherscan.CustomChains = slices.Clone(c.Etherscan.CustomChains)
	out.Coverage.ExcludeContracts = slices.Clone(c.Coverage.ExcludeContracts)
	out.Coverage.SkipFiles = slices.Clone(c.Coverage.SkipFiles)

	return &out
}

// Normalize replaces nil slices and maps with empty ones so that records
// compare equal regardless of which codec produced them.
func (c *ToolchainConfig) Normalize() {
	if c.Solidity.Compilers == nil {
		c.Solidity.Compilers = []CompilerConfig{}
	}
	if c.Networks == nil {
		c.Networks = map[string]NetworkConfig{}
	}
	for name, n := range c.Networks {
		if n.Accounts == nil {
			n.Accounts = []string{}
			c.Networks[name] = n
		}
	}
	if c.ContractSizer.Only == nil {
		c.ContractSizer.Only = []string{}
	}
	if c.Etherscan.APIKey == nil {
		c.Etherscan.APIKey = map[string]string{}
	}
	if c.Etherscan.CustomChains == nil {
		c.Etherscan.CustomChains = []CustomChain{}
	}
	if c.Coverage.ExcludeContracts == nil {
		c.Coverage.ExcludeContracts = []string{}
	}
	if c.Coverage.SkipFiles == nil {
		c.Coverage.SkipFiles = []string{}
	}
}
