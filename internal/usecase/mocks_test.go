package usecase_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stretchr/testify/mock"
	internalconfig "github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
	"github.com/trebuchet-org/tcfg/internal/usecase"
)

func newLoader(src internalconfig.MapSource, strict bool) *internalconfig.Loader {
	return internalconfig.NewLoader(internalconfig.Declarations(), src, strict, slog.New(slog.DiscardHandler))
}

// newSepoliaLoader adds a remote network whose endpoint and signer both come
// from the environment
func newSepoliaLoader(src internalconfig.MapSource) *internalconfig.Loader {
	decl := internalconfig.Declarations()
	decl.Networks["sepolia"] = config.NetworkConfig{
		ChainID:  11155111,
		URL:      "${SEPOLIA_RPC_URL}",
		Accounts: []string{"${PRIVATE_KEY}"},
	}
	return internalconfig.NewLoader(decl, src, false, slog.New(slog.DiscardHandler))
}

func fullEnv() internalconfig.MapSource {
	return internalconfig.MapSource{
		"PRIVATE_KEY":          "0xabc",
		"JOCT_API_KEY":         "key1",
		"API_URL":              "https://a",
		"BROWSER_URL":          "https://b",
		"POLYGON_AMOY_API_KEY": "amoy-key",
	}
}

// MockChainIDProber is a mock implementation of ChainIDProber
type MockChainIDProber struct {
	mock.Mock
}

func (m *MockChainIDProber) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// MockAccountDeriver is a mock implementation of AccountDeriver
type MockAccountDeriver struct {
	mock.Mock
}

func (m *MockAccountDeriver) Address(privateKey string) (string, error) {
	args := m.Called(privateKey)
	return args.String(0), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	args := m.Called(ctx, names, prompt)
	return args.String(0), args.Error(1)
}

// MockProgressSink records progress events; safe for concurrent use
type MockProgressSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  {}
func (m *MockProgressSink) Error(message string) {}

func (m *MockProgressSink) Events() []usecase.ProgressEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]usecase.ProgressEvent(nil), m.events...)
}
