package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/trebuchet-org/tcfg/internal/domain"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
	"golang.org/x/sync/errgroup"
)

const defaultProbeTimeout = 10 * time.Second

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check asks each RPC endpoint for its chain ID
	Check bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Checked  bool
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name          string
	ChainID       uint64
	URL           string
	Accounts      int
	Local         bool
	Probed        bool
	RemoteChainID uint64
	Error         error
}

// ListNetworks is a use case for listing declared networks
type ListNetworks struct {
	loader  ConfigLoader
	prober  ChainIDProber
	sink    ProgressSink
	runtime *config.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(loader ConfigLoader, prober ChainIDProber, sink ProgressSink, runtime *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{
		loader:  loader,
		prober:  prober,
		sink:    sink,
		runtime: runtime,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	cfg, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	names := cfg.NetworkNames()
	networks := make([]NetworkStatus, len(names))
	for i, name := range names {
		n := cfg.Networks[name]
		networks[i] = NetworkStatus{
			Name:     name,
			ChainID:  n.ChainID,
			URL:      n.URL,
			Accounts: len(n.Accounts),
			Local:    config.IsLocalNetwork(name),
		}
	}

	if params.Check {
		if err := uc.probe(ctx, networks); err != nil {
			return nil, err
		}
	}

	return &ListNetworksResult{
		Networks: networks,
		Checked:  params.Check,
	}, nil
}

// probe queries every remote network concurrently. Per-network failures are
// recorded on the status; only cancellation of ctx aborts the run.
func (uc *ListNetworks) probe(ctx context.Context, networks []NetworkStatus) error {
	remote := 0
	for _, n := range networks {
		if !n.Local {
			remote++
		}
	}

	var done atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(uc.runtime.ProbeConcurrency, 1))

	timeout := uc.runtime.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "probing",
		Total:   remote,
		Message: fmt.Sprintf("Probing %d networks", remote),
		Spinner: true,
	})

	for i := range networks {
		status := &networks[i]
		if status.Local {
			continue
		}
		g.Go(func() error {
			var chainID uint64
			var err error
			if status.URL == "" {
				err = domain.ErrMissingRPCURL
			} else {
				pctx, cancel := context.WithTimeout(gctx, timeout)
				chainID, err = uc.prober.ChainID(pctx, status.URL)
				cancel()
				status.Probed = true
			}

			switch {
			case err != nil:
				status.Error = err
			case chainID != status.ChainID:
				status.RemoteChainID = chainID
				status.Error = fmt.Errorf("%w: declared %d, endpoint reports %d", domain.ErrChainIDMismatch, status.ChainID, chainID)
			default:
				status.RemoteChainID = chainID
			}

			current := int(done.Add(1))
			uc.sink.OnProgress(ctx, ProgressEvent{
				Stage:   "probing",
				Current: current,
				Total:   remote,
				Message: fmt.Sprintf("Probing networks (%d/%d)", current, remote),
				Spinner: current < remote,
			})
			return nil
		})
	}

	_ = g.Wait()
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "probing", Current: remote, Total: remote})

	return ctx.Err()
}
