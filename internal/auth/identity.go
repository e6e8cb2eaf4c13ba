// Package auth tracks the locally signed-in principal. The identity gates
// the remote session store: anonymous use keeps everything in the local
// cache only.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"termctl/internal/config"
)

const identityFile = "identity.json"

// Identity is the signed-in principal record.
type Identity struct {
	Principal string    `json:"principal"`
	LoggedIn  time.Time `json:"loggedInAt"`
}

func identityPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identityFile), nil
}

// Current returns the signed-in identity, if any.
func Current() (Identity, bool) {
	p, err := identityPath()
	if err != nil {
		return Identity{}, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return Identity{}, false
	}
	var id Identity
	if err := json.Unmarshal(b, &id); err != nil || strings.TrimSpace(id.Principal) == "" {
		return Identity{}, false
	}
	return id, true
}

// Login records principal as the signed-in identity.
func Login(principal string) (Identity, error) {
	principal = strings.TrimSpace(principal)
	if principal == "" {
		return Identity{}, fmt.Errorf("login: principal cannot be empty")
	}
	p, err := identityPath()
	if err != nil {
		return Identity{}, err
	}
	id := Identity{Principal: principal, LoggedIn: time.Now()}
	b, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return Identity{}, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return Identity{}, err
	}
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Logout removes the signed-in identity. Missing identity is not an error.
func Logout() error {
	p, err := identityPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
