package usecase

import (
	"context"
	"errors"

	internalconfig "github.com/trebuchet-org/tcfg/internal/config"
	"github.com/trebuchet-org/tcfg/internal/domain"
)

// CheckConfigResult contains every finding about the configuration
type CheckConfigResult struct {
	MissingEnv     []string
	Errors         []error
	SecretFindings []domain.ValidationError
}

// OK reports whether the configuration has no findings
func (r *CheckConfigResult) OK() bool {
	return len(r.MissingEnv) == 0 && len(r.Errors) == 0 && len(r.SecretFindings) == 0
}

// CheckConfig validates the declarations and the loaded record
type CheckConfig struct {
	loader ConfigLoader
}

// NewCheckConfig creates a new CheckConfig use case
func NewCheckConfig(loader ConfigLoader) *CheckConfig {
	return &CheckConfig{loader: loader}
}

// Run executes the use case. Findings are returned in the result; the error
// is reserved for failures to run the check at all.
func (uc *CheckConfig) Run(ctx context.Context) (*CheckConfigResult, error) {
	result := &CheckConfigResult{
		MissingEnv:     uc.loader.MissingSecrets(ctx),
		SecretFindings: internalconfig.LintSecrets(uc.loader.Declarations()),
	}

	cfg, err := uc.loader.Load(ctx)
	if err != nil {
		var missing *domain.MissingEnvError
		if errors.As(err, &missing) {
			return result, nil
		}
		return nil, err
	}

	if err := internalconfig.Validate(cfg); err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			result.Errors = joined.Unwrap()
		} else {
			result.Errors = []error{err}
		}
	}

	return result, nil
}
