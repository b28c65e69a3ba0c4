package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/tcfg/internal/adapters/accounts"
	"github.com/trebuchet-org/tcfg/internal/adapters/blockchain"
	"github.com/trebuchet-org/tcfg/internal/adapters/fs"
	"github.com/trebuchet-org/tcfg/internal/adapters/interactive"
	"github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.Provider,
	config.ProvideLoader,
	wire.Bind(new(usecase.ConfigLoader), new(*config.Loader)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewProberAdapter,
	wire.Bind(new(usecase.ChainIDProber), new(*blockchain.ProberAdapter)),

	accounts.NewDeriverAdapter,
	wire.Bind(new(usecase.AccountDeriver), new(*accounts.DeriverAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ConfigSet,
	FSSet,
	BlockchainSet,
	InteractiveSet,
)
