package config

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/trebuchet-org/tcfg/internal/domain"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

type loadOptions struct {
	strict bool
	logger *slog.Logger
}

// Option configures Load
type Option func(*loadOptions)

// WithStrictSecrets makes Load fail when a signing credential or explorer API
// key references an unset variable.
func WithStrictSecrets() Option {
	return func(o *loadOptions) {
		o.strict = true
	}
}

// WithLogger sets the logger used to report unset variables
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

// Load builds the configuration record by resolving every ${VAR} reference in
// decl through src. Unset variables resolve to empty strings and empty
// credentials are dropped, so a missing PRIVATE_KEY yields an empty account
// list rather than a failure. In strict mode unset secrets are reported as a
// *domain.MissingEnvError instead.
func Load(decl *config.ToolchainConfig, src Source, opts ...Option) (*config.ToolchainConfig, error) {
	o := loadOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	if decl == nil {
		decl = &config.ToolchainConfig{}
	}
	if src == nil {
		src = MapSource{}
	}

	plain := newExpander(src)
	secrets := newExpander(src)

	cfg := decl.Clone()
	cfg.Normalize()

	for name, network := range cfg.Networks {
		network.URL = plain.expand(network.URL)
		accounts := make([]string, 0, len(network.Accounts))
		for _, account := range network.Accounts {
			if v := secrets.expand(account); v != "" {
				accounts = append(accounts, v)
			}
		}
		network.Accounts = accounts
		cfg.Networks[name] = network
	}

	for network, key := range cfg.Etherscan.APIKey {
		cfg.Etherscan.APIKey[network] = secrets.expand(key)
	}
	for i, chain := range cfg.Etherscan.CustomChains {
		chain.URLs.APIURL = plain.expand(chain.URLs.APIURL)
		chain.URLs.BrowserURL = plain.expand(chain.URLs.BrowserURL)
		cfg.Etherscan.CustomChains[i] = chain
	}
	// The default key is not bound to any network, so it never counts as required.
	cfg.Etherscan.DefaultAPIKey = plain.expand(cfg.Etherscan.DefaultAPIKey)

	for _, name := range plain.missing {
		o.logger.Debug("environment variable not set", "var", name)
	}
	for _, name := range secrets.missing {
		o.logger.Debug("secret environment variable not set", "var", name)
	}

	if o.strict && len(secrets.missing) > 0 {
		missing := slices.Clone(secrets.missing)
		slices.Sort(missing)
		return nil, &domain.MissingEnvError{Vars: missing}
	}

	return cfg, nil
}

// Loader binds declarations and a source for repeated loads
type Loader struct {
	decl   *config.ToolchainConfig
	src    Source
	strict bool
	log    *slog.Logger
}

// NewLoader creates a new loader
func NewLoader(decl *config.ToolchainConfig, src Source, strict bool, log *slog.Logger) *Loader {
	return &Loader{
		decl:   decl,
		src:    src,
		strict: strict,
		log:    log,
	}
}

// Load resolves the configuration record
func (l *Loader) Load(ctx context.Context) (*config.ToolchainConfig, error) {
	opts := []Option{WithLogger(l.log)}
	if l.strict {
		opts = append(opts, WithStrictSecrets())
	}
	return Load(l.decl, l.src, opts...)
}

// MissingSecrets lists the unset variables referenced by credentials and API
// keys, regardless of the loader's strictness.
func (l *Loader) MissingSecrets(ctx context.Context) []string {
	_, err := Load(l.decl, l.src, WithLogger(l.log), WithStrictSecrets())
	var missing *domain.MissingEnvError
	if errors.As(err, &missing) {
		return missing.Vars
	}
	return nil
}

// Declarations returns a copy of the unresolved declarations
func (l *Loader) Declarations() *config.ToolchainConfig {
	return l.decl.Clone()
}
