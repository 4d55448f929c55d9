package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"hubspot-cli/internal/oauth"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "hs", "config.json"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	s := testStore(t)

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultFormat, cfg.DefaultFormat)
	assert.Equal(t, DefaultLimit, cfg.DefaultLimit)
	assert.False(t, cfg.IsConfigured())
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o700))
	require.NoError(t, os.WriteFile(s.Path(), []byte("not json{"), 0o600))

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())
	assert.Equal(t, DefaultFormat, cfg.DefaultFormat)
}

func TestSetAccessToken_RoundTrip(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SetAccessToken("pat-na1-secret"))

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "pat-na1-secret", cfg.AccessToken)
	assert.True(t, cfg.HasToken())
}

func TestOAuthCredentials_RoundTripKeepsMillisecondPrecision(t *testing.T) {
	s := testStore(t)
	creds := &oauth.Credentials{
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    1_700_000_123_457,
		TokenType:    "bearer",
		Scopes:       []string{"oauth", "crm.objects.contacts.read"},
	}
	require.NoError(t, s.SetOAuthCredentials(creds))

	cfg, err := s.Load()
	require.NoError(t, err)
	require.True(t, cfg.HasOAuth())
	assert.Equal(t, int64(1_700_000_123_457), cfg.OAuth.ExpiresAt)
	assert.Equal(t, []string{"oauth", "crm.objects.contacts.read"}, cfg.OAuth.Scopes)
	assert.Equal(t, AuthMethodOAuth, cfg.AuthMethod)
}

func TestMerge_PreservesUnknownFields(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o700))
	seed := `{"accessToken":"pat-old","futureFeature":{"enabled":true},"defaultFormat":"json"}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(seed), 0o600))

	require.NoError(t, s.SetPortalID("12345"))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "pat-old", gjson.GetBytes(raw, "accessToken").String())
	assert.True(t, gjson.GetBytes(raw, "futureFeature.enabled").Bool())
	assert.Equal(t, "json", gjson.GetBytes(raw, "defaultFormat").String())
	assert.Equal(t, "12345", gjson.GetBytes(raw, "portalId").String())
}

func TestClearOAuth_FallsBackToToken(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SetAccessToken("pat-keep"))
	require.NoError(t, s.SetOAuthApp(oauth.AppConfig{ClientID: "cid", ClientSecret: "cs"}))
	require.NoError(t, s.SetOAuthCredentials(&oauth.Credentials{AccessToken: "at", RefreshToken: "rt"}))

	require.NoError(t, s.ClearOAuth())

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasOAuth())
	assert.Equal(t, "pat-keep", cfg.AccessToken)
	assert.Equal(t, AuthMethodToken, cfg.AuthMethod)
	// The app config survives so a later login can skip re-entry.
	require.NotNil(t, cfg.OAuthApp)
	assert.Equal(t, "cid", cfg.OAuthApp.ClientID)
}

func TestClearOAuth_NoTokenDropsAuthMethod(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SetOAuthCredentials(&oauth.Credentials{AccessToken: "at"}))

	require.NoError(t, s.ClearOAuth())

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.AuthMethod)
	assert.False(t, cfg.IsConfigured())
}

func TestWrite_InvalidatesCache(t *testing.T) {
	s := testStore(t)
	cfg, err := s.Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasToken())

	require.NoError(t, s.SetAccessToken("pat-new"))

	cfg, err = s.Load()
	require.NoError(t, err)
	assert.True(t, cfg.HasToken(), "a write must be visible to the next load")
}

func TestLoad_CacheExpires(t *testing.T) {
	s := testStore(t)
	_, err := s.Load()
	require.NoError(t, err)

	// An out-of-band write bypasses the store, so only TTL expiry reveals it.
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o700))
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"accessToken":"pat-external"}`), 0o600))

	s.cachedAt = time.Now().Add(-2 * cacheTTL)
	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "pat-external", cfg.AccessToken)
}

func TestWrite_FilePermissions(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SetAccessToken("pat-secret"))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}
