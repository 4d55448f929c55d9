package oauth

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationURL_Params(t *testing.T) {
	scopes := []string{"crm.objects.contacts.read", "crm.objects.deals.read", "oauth"}
	raw := AuthorizationURL("client-123", "state-abc", scopes)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "app.hubspot.com", u.Host)
	assert.Equal(t, "/oauth/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, CallbackURL, q.Get("redirect_uri"))
	assert.Equal(t, "crm.objects.contacts.read crm.objects.deals.read oauth", q.Get("scope"))
	assert.Equal(t, "state-abc", q.Get("state"))
}

func TestAuthorizationURL_SingleStateParam(t *testing.T) {
	raw := AuthorizationURL("client-123", "state-abc", []string{"oauth"})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Len(t, u.Query()["state"], 1)
}

func TestAuthorizationURL_EscapesSpecialCharacters(t *testing.T) {
	raw := AuthorizationURL("id with spaces", "a&b=c", []string{"oauth"})

	assert.NotContains(t, raw, "id with spaces")
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "id with spaces", u.Query().Get("client_id"))
	assert.Equal(t, "a&b=c", u.Query().Get("state"))
}

func TestAuthorizationURL_Deterministic(t *testing.T) {
	a := AuthorizationURL("client", "state", []string{"oauth"})
	b := AuthorizationURL("client", "state", []string{"oauth"})
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, AuthorizeEndpoint+"?"))
}
