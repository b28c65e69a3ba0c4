package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/tcfg/internal/domain/config"
)

// projectMarkers identify a contract project root
var projectMarkers = []string{
	ToolchainFileName,
	"hardhat.config.js",
	"hardhat.config.ts",
}

// DefaultEnvFiles are consulted, in order, after the process environment
var DefaultEnvFiles = []string{".env", ".env.local"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			if projectRoot, err = os.Getwd(); err != nil {
				return nil, fmt.Errorf("failed to determine working directory: %w", err)
			}
		}
	}

	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	envFiles := v.GetStringSlice("env_file")
	if len(envFiles) == 0 {
		envFiles = DefaultEnvFiles
	}
	resolvedEnvFiles := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if !filepath.IsAbs(f) {
			f = filepath.Join(projectRoot, f)
		}
		resolvedEnvFiles = append(resolvedEnvFiles, f)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:      projectRoot,
		DataDir:          filepath.Join(projectRoot, ".tcfg"),
		EnvFiles:         resolvedEnvFiles,
		Debug:            v.GetBool("debug"),
		NonInteractive:   v.GetBool("non_interactive"),
		JSON:             v.GetBool("json"),
		Strict:           v.GetBool("strict"),
		Timeout:          v.GetDuration("timeout"),
		ProbeTimeout:     v.GetDuration("probe_timeout"),
		ProbeConcurrency: v.GetInt("probe_concurrency"),
	}

	if cfg.ProbeConcurrency < 1 {
		cfg.ProbeConcurrency = 1
	}

	toolchainFile := filepath.Join(projectRoot, ToolchainFileName)
	if _, err := os.Stat(toolchainFile); err == nil {
		cfg.ToolchainTOML = toolchainFile
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find a project marker
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding a marker
			return "", errors.New("not in a contract project (no toolchain.toml or hardhat config found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".tcfg"))

	// Set up environment variables
	v.SetEnvPrefix("TCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("probe_timeout", 10*time.Second)
	v.SetDefault("probe_concurrency", 4)
	v.SetDefault("debug", false)
	v.SetDefault("strict", false)
	v.SetDefault("non_interactive", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bindFlags(v, cmd.Flags())
	}

	return v
}

// bindFlags binds every flag under its snake_case key
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}

// ProvideLoader creates the configuration Loader for Wire dependency injection.
// The process environment takes precedence over dotenv files.
func ProvideLoader(cfg *config.RuntimeConfig, log *slog.Logger) (*Loader, error) {
	decl, applied, err := LoadDeclarations(cfg.ProjectRoot)
	if err != nil {
		return nil, err
	}
	if applied != "" {
		log.Debug("applied declaration override", "file", applied)
	}

	dotenv, err := DotenvSource(cfg.EnvFiles...)
	if err != nil {
		return nil, err
	}

	return NewLoader(decl, Layered(EnvSource(), dotenv), cfg.Strict, log), nil
}
