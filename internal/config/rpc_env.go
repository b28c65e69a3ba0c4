package config

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// envVarPattern matches ${VAR_NAME} patterns in declaration values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// envRefPattern matches every ${VAR_NAME} inside a value. A bare $ is literal.
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// DetectEnvVar checks if a raw declaration value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// ReferencedVars returns every variable referenced by a raw value, in order of appearance
func ReferencedVars(rawValue string) []string {
	var vars []string
	for _, m := range envRefPattern.FindAllStringSubmatch(rawValue, -1) {
		if !slices.Contains(vars, m[1]) {
			vars = append(vars, m[1])
		}
	}
	return vars
}

// GenerateEnvVarName generates a conventional env var name for a network secret.
// Convention: camelCase split on case changes, uppercase, dashes/dots to underscores, suffix appended.
// Examples: (polygonAmoy, API_KEY) -> POLYGON_AMOY_API_KEY, (celo-sepolia, RPC_URL) -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName, suffix string) string {
	var b strings.Builder
	runes := []rune(networkName)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	name := strings.NewReplacer("-", "_", ".", "_").Replace(b.String())
	return name + "_" + suffix
}

// expander resolves ${VAR} references through a Source and remembers which
// variables were missing or empty.
type expander struct {
	src     Source
	missing []string
}

func newExpander(src Source) *expander {
	return &expander{src: src}
}

func (e *expander) expand(raw string) string {
	return envRefPattern.ReplaceAllStringFunc(raw, func(ref string) string {
		name := ref[2 : len(ref)-1]
		v, ok := e.src.Lookup(name)
		if !ok || v == "" {
			if !slices.Contains(e.missing, name) {
				e.missing = append(e.missing, name)
			}
			return ""
		}
		return v
	})
}
