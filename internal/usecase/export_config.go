package usecase

import (
	"context"
	"fmt"

	internalconfig "github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/domain"
)

// ExportConfigParams contains parameters for exporting the record
type ExportConfigParams struct {
	Format internalconfig.Format
	Output string // empty writes nothing to disk
	Reveal bool   // keep secrets unmasked
	Force  bool   // overwrite an existing Output
}

// ExportConfigResult contains the serialized record
type ExportConfigResult struct {
	Data   []byte
	Format internalconfig.Format
	Path   string
}

// ExportConfig serializes the configuration record for an external toolchain
type ExportConfig struct {
	loader ConfigLoader
	writer FileWriter
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(loader ConfigLoader, writer FileWriter) *ExportConfig {
	return &ExportConfig{
		loader: loader,
		writer: writer,
	}
}

// Run executes the use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	cfg, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !params.Reveal {
		cfg = internalconfig.Redacted(cfg)
	}

	data, err := internalconfig.Encode(cfg, params.Format)
	if err != nil {
		return nil, err
	}

	result := &ExportConfigResult{
		Data:   data,
		Format: params.Format,
	}

	if params.Output != "" {
		if !params.Force {
			exists, err := uc.writer.FileExists(ctx, params.Output)
			if err != nil {
				return nil, fmt.Errorf("failed to check %s: %w", params.Output, err)
			}
			if exists {
				return nil, fmt.Errorf("%w: %s (use --force to overwrite)", domain.ErrOutputExists, params.Output)
			}
		}
		if err := uc.writer.WriteFile(ctx, params.Output, data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", params.Output, err)
		}
		result.Path = params.Output
	}

	return result, nil
}
