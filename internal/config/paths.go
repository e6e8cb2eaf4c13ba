package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the termctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/termctl; on macOS
// to ~/Library/Application Support/termctl; and on Windows to %AppData%/termctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "termctl"), nil
}

const (
	defaultBridgeURL = "http://localhost:7681"
	defaultSyncURL   = "http://localhost:8790"
)

// BridgeURL returns the base URL of the local execution bridge.
// TERMCTL_BRIDGE_URL overrides the default local origin.
func BridgeURL() string {
	if v := strings.TrimSpace(os.Getenv("TERMCTL_BRIDGE_URL")); v != "" {
		return strings.TrimRight(v, "/")
	}
	return defaultBridgeURL
}

// SyncURL returns the base URL of the remote session store.
// TERMCTL_SYNC_URL overrides the default.
func SyncURL() string {
	if v := strings.TrimSpace(os.Getenv("TERMCTL_SYNC_URL")); v != "" {
		return strings.TrimRight(v, "/")
	}
	return defaultSyncURL
}
