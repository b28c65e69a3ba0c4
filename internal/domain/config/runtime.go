package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Sources
	EnvFiles      []string // dotenv files consulted after the process environment
	ToolchainTOML string   // optional declaration override, empty if absent

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Strict         bool // Fail when a secret variable is unset
	Timeout        time.Duration

	// Network probing
	ProbeTimeout     time.Duration
	ProbeConcurrency int
}
