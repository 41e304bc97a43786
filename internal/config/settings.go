// Package config loads CLI settings from flags, the environment, and an
// optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// APIKeyEnvVar is the default credential source.
const APIKeyEnvVar = "PERPLEXITY_API_KEY"

// BaseURLEnvVar overrides the API endpoint, mainly for proxies.
const BaseURLEnvVar = "PERPLEXITY_BASE_URL"

// settingsName is the settings file looked up in the current and home
// directories when no --config flag is given.
const settingsName = ".plx.yml"

// ErrNoAPIKey is returned when no API key could be resolved from the flag,
// the environment, or the settings file.
var ErrNoAPIKey = fmt.Errorf("no API key found: pass --api-key or set %s", APIKeyEnvVar)

// Init loads the optional .env file and the settings file into viper.
// An explicit configFile that cannot be read is an error; the absence of the
// default settings file is not.
func Init(configFile string) error {
	// A .env in the working directory is a convenience, not a requirement.
	_ = godotenv.Load()

	if configFile != "" {
		return loadSettingsFile(configFile)
	}

	for _, path := range defaultSettingsPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return loadSettingsFile(path)
	}

	return nil
}

// defaultSettingsPaths returns the settings file locations in priority
// order: current directory, then home directory.
func defaultSettingsPaths() []string {
	paths := []string{settingsName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, settingsName))
	}
	return paths
}

// loadSettingsFile reads a settings file, applies ${env://VAR} substitution,
// and hands the result to viper.
func loadSettingsFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	processed, err := SubstituteEnvVars(string(raw))
	if err != nil {
		return fmt.Errorf("error reading settings file %q: %w", path, err)
	}

	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(strings.NewReader(processed)); err != nil {
		return fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}
	return nil
}

// ResolveAPIKey resolves the credential for the request. Order: the
// explicit flag value, the environment variable, the settings file.
func ResolveAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key, nil
	}
	if key := viper.GetString("api-key"); key != "" {
		return key, nil
	}
	return "", ErrNoAPIKey
}

// ResolveBaseURL returns the endpoint override from the environment or the
// settings file, or "" when the built-in default should be used.
func ResolveBaseURL() string {
	if url := os.Getenv(BaseURLEnvVar); url != "" {
		return url
	}
	return viper.GetString("base-url")
}

// IsNoAPIKey reports whether err is the missing-credential error.
func IsNoAPIKey(err error) bool {
	return errors.Is(err, ErrNoAPIKey)
}
