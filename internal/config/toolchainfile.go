package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

// ToolchainFileName is the optional project-level declaration override
const ToolchainFileName = "toolchain.toml"

// toolchainFileRaw is the on-disk shape of toolchain.toml.
// Sections that are absent keep the built-in declaration.
type toolchainFileRaw struct {
	Solidity      *config.SolidityConfig          `toml:"solidity"`
	Networks      map[string]config.NetworkConfig `toml:"networks"`
	GasReporter   *config.GasReporterConfig       `toml:"gasReporter"`
	ContractSizer *config.ContractSizerConfig     `toml:"contractSizer"`
	Etherscan     *etherscanRaw                   `toml:"etherscan"`
	Coverage      *config.CoverageConfig          `toml:"coverage"`
}

type etherscanRaw struct {
	APIKey        map[string]string    `toml:"apiKey"`
	CustomChains  []config.CustomChain `toml:"customChains"`
	DefaultAPIKey *string              `toml:"defaultApiKey"`
}

// loadToolchainFile parses toolchain.toml.
// Returns (nil, nil) if the file doesn't exist.
func loadToolchainFile(path string) (*toolchainFileRaw, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var raw toolchainFileRaw
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &raw, nil
}

// LoadDeclarations returns the built-in declarations overlaid with
// toolchain.toml from projectRoot, and the path of the file that was applied
// (empty when there is none).
func LoadDeclarations(projectRoot string) (*config.ToolchainConfig, string, error) {
	path := filepath.Join(projectRoot, ToolchainFileName)
	raw, err := loadToolchainFile(path)
	if err != nil {
		return nil, "", err
	}
	if raw == nil {
		return Declarations(), "", nil
	}
	return mergeDeclarations(Declarations(), raw), path, nil
}

// mergeDeclarations overlays raw onto base. Scalar sections replace the base
// section wholesale; networks, API keys and custom chains merge by network name.
func mergeDeclarations(base *config.ToolchainConfig, raw *toolchainFileRaw) *config.ToolchainConfig {
	out := base.Clone()
	out.Normalize()

	if raw.Solidity != nil {
		out.Solidity = *raw.Solidity
	}
	for name, network := range raw.Networks {
		out.Networks[name] = network
	}
	if raw.GasReporter != nil {
		out.GasReporter = *raw.GasReporter
	}
	if raw.ContractSizer != nil {
		out.ContractSizer = *raw.ContractSizer
	}
	if raw.Coverage != nil {
		out.Coverage = *raw.Coverage
	}

	if raw.Etherscan != nil {
		for network, key := range raw.Etherscan.APIKey {
			out.Etherscan.APIKey[network] = key
		}
		for _, chain := range raw.Etherscan.CustomChains {
			replaced := false
			for i, existing := range out.Etherscan.CustomChains {
				if existing.Network == chain.Network {
					out.Etherscan.CustomChains[i] = chain
					replaced = true
					break
				}
			}
			if !replaced {
				out.Etherscan.CustomChains = append(out.Etherscan.CustomChains, chain)
			}
		}
		if raw.Etherscan.DefaultAPIKey != nil {
			out.Etherscan.DefaultAPIKey = *raw.Etherscan.DefaultAPIKey
		}
	}

	out.Normalize()
	return out
}
