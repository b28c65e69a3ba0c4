//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/tcfg/internal/adapters"
	"github.com/trebuchet-org/tcfg/internal/logging"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewListNetworks,
		usecase.NewShowNetwork,
		usecase.NewListExplorers,
		usecase.NewListAccounts,
		usecase.NewCheckConfig,
		usecase.NewExportConfig,

		// App
		NewApp,
	)
	return nil, nil
}
