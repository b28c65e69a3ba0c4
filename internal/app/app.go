package app

import (
	"github.com/trebuchet-org/tcfg/internal/domain/config"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ShowConfig    *usecase.ShowConfig
	ListNetworks  *usecase.ListNetworks
	ShowNetwork   *usecase.ShowNetwork
	ListExplorers *usecase.ListExplorers
	ListAccounts  *usecase.ListAccounts
	CheckConfig   *usecase.CheckConfig
	ExportConfig  *usecase.ExportConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	showNetwork *usecase.ShowNetwork,
	listExplorers *usecase.ListExplorers,
	listAccounts *usecase.ListAccounts,
	checkConfig *usecase.CheckConfig,
	exportConfig *usecase.ExportConfig,
) (*App, error) {
	return &App{
		Config:        cfg,
		ShowConfig:    showConfig,
		ListNetworks:  listNetworks,
		ShowNetwork:   showNetwork,
		ListExplorers: listExplorers,
		ListAccounts:  listAccounts,
		CheckConfig:   checkConfig,
		ExportConfig:  exportConfig,
	}, nil
}
