package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that pins the config file.
const EnvConfigPath = "CINEFEED_CONFIG"

// DefaultPath returns $XDG_CONFIG_HOME/cinefeed/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "cinefeed", "config.toml")
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() []string {
	return []string{
		"config.toml",
		DefaultPath(),
		filepath.Join("/etc", "cinefeed", "config.toml"),
	}
}

// Discover returns the config file to load. CINEFEED_CONFIG wins and must
// exist; otherwise the first existing entry of searchPaths is used.
func Discover() (string, error) {
	if pinned := os.Getenv(EnvConfigPath); pinned != "" {
		if _, err := os.Stat(pinned); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, pinned, err)
		}
		return pinned, nil
	}

	candidates := searchPaths()
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (searched %s)", ErrNotFound, strings.Join(candidates, ", "))
}
