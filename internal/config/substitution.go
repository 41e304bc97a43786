package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${env://VAR} and ${env://VAR:-default} placeholders
// in settings file content.
var envVarPattern = regexp.MustCompile(`\$\{env://([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// splitDefault extracts the variable name and optional default from a
// placeholder body like "VAR" or "VAR:-default".
func splitDefault(varPart string) (varName, defaultValue string, hasDefault bool) {
	if strings.Contains(varPart, ":-") {
		parts := strings.SplitN(varPart, ":-", 2)
		return parts[0], parts[1], true
	}
	return varPart, "", false
}

// SubstituteEnvVars replaces ${env://VAR} and ${env://VAR:-default}
// placeholders with environment variable values. A placeholder without a
// default whose variable is unset is an error, so a settings file never
// silently loads with a missing credential.
func SubstituteEnvVars(content string) (string, error) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varPart := strings.TrimPrefix(strings.TrimSuffix(match, "}"), "${env://")
		varName, defaultValue, hasDefault := splitDefault(varPart)

		if value := os.Getenv(varName); value != "" {
			return value
		}
		if hasDefault {
			return defaultValue
		}

		missing = append(missing, varName)
		return match
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("environment variable substitution failed: %s not set", strings.Join(missing, ", "))
	}

	return result, nil
}
