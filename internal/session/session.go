// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

// package session holds the signed-in credential and the UI preference flag
// between runs. It is the console's replacement for the browser's local
// storage: a small YAML file in the user config directory with the access
// and refresh tokens plus the light/dark theme choice.
//
// The store is an explicit object injected into the API client and the TUI
// gate. Its only writers are the login flow (set), explicit logout (clear)
// and the API client's 401 handler (clear).
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/golang-jwt/jwt/v5"
)

// Themes persisted in the store.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type fileData struct {
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`
	Theme        string `yaml:"theme"`
}

// Store is a file-backed session credential holder. The zero value is not
// usable; construct with Open.
type Store struct {
	mu   sync.Mutex
	path string
	data fileData
}

// Open loads the session file at path, creating parent directories as
// needed. A missing file is not an error; it simply means "signed out".
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return s, nil
}

// DefaultPath returns the session file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "nchrd", "session.yaml"), nil
}

// Tokens returns the stored access and refresh tokens.
func (s *Store) Tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AccessToken, s.data.RefreshToken
}

// Authenticated reports whether a credential is present. Presence is the
// sole gate for showing protected screens; validity is the server's call.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.AccessToken != ""
}

// SetTokens stores a fresh token pair and persists it.
func (s *Store) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AccessToken = access
	s.data.RefreshToken = refresh
	return s.save()
}

// Clear drops the credential and persists the change. The theme preference
// survives a sign-out.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AccessToken = ""
	s.data.RefreshToken = ""
	return s.save()
}

// Theme returns the persisted presentation preference, defaulting to dark.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Theme == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// SetTheme persists the presentation preference.
func (s *Store) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Theme = theme
	return s.save()
}

func (s *Store) save() error {
	out, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Claims is what the console reads out of the access token for display.
// The token is decoded without signature verification: the server remains
// the authority, this is presentation only.
type Claims struct {
	Username string
	Role     string
	Expiry   time.Time
}

// Claims decodes the stored access token. Returns false when signed out or
// when the token is not a parseable JWT.
func (s *Store) Claims() (Claims, bool) {
	access, _ := s.Tokens()
	if access == "" {
		return Claims{}, false
	}
	tok, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}
	var c Claims
	if v, ok := mc["username"].(string); ok {
		c.Username = v
	}
	if v, ok := mc["role"].(string); ok {
		c.Role = v
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.Expiry = exp.Time
	}
	return c, true
}
