package config

import (
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

// Mask hides all but the first four characters of a secret
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 4 {
		return "****"
	}
	return string(runes[:4]) + "…"
}

// Redacted returns a copy of cfg with credentials and API keys masked
func Redacted(cfg *config.ToolchainConfig) *config.ToolchainConfig {
	out := cfg.Clone()
	for name, network := range out.Networks {
		for i, account := range network.Accounts {
			network.Accounts[i] = Mask(account)
		}
		out.Networks[name] = network
	}
	for network, key := range out.Etherscan.APIKey {
		out.Etherscan.APIKey[network] = Mask(key)
	}
	out.Etherscan.DefaultAPIKey = Mask(out.Etherscan.DefaultAPIKey)
	return out
}
