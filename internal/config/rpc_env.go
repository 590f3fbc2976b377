package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/insight-platform/insight-deploy/internal/domain"
)

// envRefPattern matches every ${VAR_NAME} reference inside a value
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, celo-sepolia -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ExpandEnvRefs replaces ${VAR} references in value with their environment values.
// key names the config entry in the error when a variable is unset or empty.
func ExpandEnvRefs(value, key string) (string, error) {
	var missing string
	expanded := envRefPattern.ReplaceAllStringFunc(value, func(ref string) string {
		name := envRefPattern.FindStringSubmatch(ref)[1]
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			if missing == "" {
				missing = name
			}
			return ""
		}
		return v
	})
	if missing != "" {
		return "", domain.MissingEnvVarErr{Name: missing, Key: key}
	}
	return expanded, nil
}
