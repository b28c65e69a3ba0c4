package usecase

import (
	"context"

	internalconfig "github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config        *config.ToolchainConfig // secrets masked
	ProjectRoot   string
	ToolchainTOML string
	EnvFiles      []string
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	loader  ConfigLoader
	runtime *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(loader ConfigLoader, runtime *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		loader:  loader,
		runtime: runtime,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	cfg, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:        internalconfig.Redacted(cfg),
		ProjectRoot:   uc.runtime.ProjectRoot,
		ToolchainTOML: uc.runtime.ToolchainTOML,
		EnvFiles:      uc.runtime.EnvFiles,
	}, nil
}
