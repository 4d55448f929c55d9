// Package config persists CLI configuration and credentials in a local
// JSON file. Writes are read-merge-write so unrelated fields, including
// ones this version does not know about, survive every save.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"hubspot-cli/internal/oauth"
)

// Authentication methods selecting which credential path API requests use.
const (
	AuthMethodToken = "token"
	AuthMethodOAuth = "oauth"
)

// Defaults applied when the config file is missing or silent.
const (
	DefaultFormat = "plain"
	DefaultLimit  = 20
)

// cacheTTL bounds how long a loaded config is served from memory. The
// cache is also invalidated on every successful write, so a process that
// writes credentials and immediately reads them sees the new value.
const cacheTTL = time.Second

// Config is the persisted record. OAuth credential fields live alongside
// the static private-app token so either method can be configured.
type Config struct {
	AccessToken   string             `json:"accessToken,omitempty"`
	PortalID      string             `json:"portalId,omitempty"`
	DefaultFormat string             `json:"defaultFormat,omitempty"`
	DefaultLimit  int                `json:"defaultLimit,omitempty"`
	AuthMethod    string             `json:"authMethod,omitempty"`
	OAuthApp      *oauth.AppConfig   `json:"oauthApp,omitempty"`
	OAuth         *oauth.Credentials `json:"oauth,omitempty"`
}

// IsConfigured reports whether any usable authentication is present.
func (c *Config) IsConfigured() bool {
	return c.HasToken() || c.HasOAuth()
}

// HasToken reports whether a static private-app token is configured.
func (c *Config) HasToken() bool {
	return c != nil && c.AccessToken != ""
}

// HasOAuth reports whether OAuth credentials are configured.
func (c *Config) HasOAuth() bool {
	return c != nil && c.OAuth != nil && c.OAuth.AccessToken != ""
}

// Store reads and writes the config file at a fixed path. It is an
// explicit object handed to callers rather than ambient package state.
type Store struct {
	path string

	mu       sync.Mutex
	cached   *Config
	cachedAt time.Time
}

// NewStore returns a store rooted at ~/.config/hs/config.json.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return NewStoreAt(filepath.Join(home, ".config", "hs", "config.json")), nil
}

// NewStoreAt returns a store rooted at an explicit path. Used by tests.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location for user-facing messages.
func (s *Store) Path() string { return s.path }

// Load returns the current config, applying defaults for absent fields.
// Results are cached for a short TTL to avoid repeated file reads within
// one command.
func (s *Store) Load() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < cacheTTL {
		return s.cached, nil
	}

	cfg := &Config{DefaultFormat: DefaultFormat, DefaultLimit: DefaultLimit}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config at %s: %w", s.path, err)
		}
	} else if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		log.Warnf("config at %s is not a JSON object, ignoring it", s.path)
	} else if err = json.Unmarshal(raw, cfg); err != nil {
		log.Warnf("failed to parse config at %s: %v", s.path, err)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = DefaultFormat
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultLimit
	}

	s.cached = cfg
	s.cachedAt = time.Now()
	return cfg, nil
}

// SetAccessToken persists a static private-app token.
func (s *Store) SetAccessToken(token string) error {
	return s.merge(map[string]any{"accessToken": token})
}

// SetAuthMethod persists which credential path API requests should use.
func (s *Store) SetAuthMethod(method string) error {
	return s.merge(map[string]any{"authMethod": method})
}

// SetPortalID persists the portal id reported by the account-info API.
func (s *Store) SetPortalID(portalID string) error {
	return s.merge(map[string]any{"portalId": portalID})
}

// SetOAuthApp persists the client id/secret so a later process can refresh
// tokens without the operator re-entering them.
func (s *Store) SetOAuthApp(app oauth.AppConfig) error {
	return s.merge(map[string]any{"oauthApp": app})
}

// SetOAuthCredentials persists freshly exchanged credentials and switches
// the auth method to oauth.
func (s *Store) SetOAuthCredentials(creds *oauth.Credentials) error {
	return s.merge(map[string]any{
		"oauth":      creds,
		"authMethod": AuthMethodOAuth,
	})
}

// ClearOAuth removes OAuth credentials, leaving any static token and the
// saved app config intact. The auth method falls back to token when a
// static token is still present.
func (s *Store) ClearOAuth() error {
	return s.rewrite(func(raw []byte) ([]byte, error) {
		out, err := sjson.DeleteBytes(raw, "oauth")
		if err != nil {
			return nil, err
		}
		if gjson.GetBytes(out, "accessToken").String() != "" {
			return sjson.SetBytes(out, "authMethod", AuthMethodToken)
		}
		return sjson.DeleteBytes(out, "authMethod")
	})
}

// merge applies the given top-level fields onto the existing file content.
func (s *Store) merge(fields map[string]any) error {
	return s.rewrite(func(raw []byte) ([]byte, error) {
		var err error
		for key, value := range fields {
			raw, err = sjson.SetBytes(raw, key, value)
			if err != nil {
				return nil, err
			}
		}
		return raw, nil
	})
}

// rewrite performs a whole-file read-merge-write. The directory is created
// owner-only and the file is written 0600 because it holds credentials.
func (s *Store) rewrite(mutate func(raw []byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config at %s: %w", s.path, err)
		}
		raw = []byte("{}")
	}
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		log.Warnf("config at %s is not a JSON object, it will be rewritten", s.path)
		raw = []byte("{}")
	}

	out, err := mutate(raw)
	if err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = os.WriteFile(s.path, pretty.Pretty(out), 0o600); err != nil {
		return fmt.Errorf("failed to write config at %s: %w", s.path, err)
	}

	s.cached = nil
	return nil
}
