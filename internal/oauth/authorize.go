package oauth

import (
	"net/url"
	"strings"
)

// AuthorizationURL builds the HubSpot authorization URL for the fixed
// callback endpoint. The result is deterministic for identical inputs.
func AuthorizationURL(clientID, state string, scopes []string) string {
	return authorizationURL(AuthorizeEndpoint, CallbackURL, clientID, state, scopes)
}

func authorizationURL(endpoint, redirectURI, clientID, state string, scopes []string) string {
	v := url.Values{}
	v.Set("client_id", clientID)
	v.Set("redirect_uri", redirectURI)
	v.Set("scope", strings.Join(scopes, " "))
	v.Set("state", state)
	return endpoint + "?" + v.Encode()
}
