package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrUnknownNetwork is returned when a network name is not declared
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrChainIDMismatch is returned when an RPC endpoint reports a different chain
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrUnsupportedFormat is returned for unknown serialization formats
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidPrivateKey is returned when a signing credential cannot be parsed
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrNonInteractive is returned when a prompt is required but disabled
	ErrNonInteractive = errors.New("interactive selection disabled")

	// ErrMissingRPCURL is returned when a remote network resolved to no endpoint
	ErrMissingRPCURL = errors.New("no RPC URL set")

	// ErrOutputExists is returned when an export would overwrite a file
	ErrOutputExists = errors.New("output file already exists")
)

// MissingEnvError lists secret variables that are referenced but unset
type MissingEnvError struct {
	Vars []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Vars, ", "))
}

// UnknownNetworkErr carries close matches for a mistyped network name
type UnknownNetworkErr struct {
	Name        string
	Suggestions []string
}

func (e UnknownNetworkErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' is not declared", e.Name)
	}
	return fmt.Sprintf("network '%s' is not declared, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkErr) Unwrap() error {
	return ErrUnknownNetwork
}

// ValidationError is a single configuration defect
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
