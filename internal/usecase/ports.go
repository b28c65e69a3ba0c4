package usecase

import (
	"context"

	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

// ConfigLoader produces the toolchain configuration record
type ConfigLoader interface {
	Load(ctx context.Context) (*config.ToolchainConfig, error)
	Declarations() *config.ToolchainConfig
	MissingSecrets(ctx context.Context) []string
}

// ChainIDProber asks an RPC endpoint for its chain ID
type ChainIDProber interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// AccountDeriver derives the signer address of a private key
type AccountDeriver interface {
	Address(privateKey string) (string, error)
}

// FileWriter handles file system writes
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// NetworkSelector picks a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
