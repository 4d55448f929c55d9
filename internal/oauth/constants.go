package oauth

import "time"

// HubSpot OAuth endpoints.
const (
	AuthorizeEndpoint = "https://app.hubspot.com/oauth/authorize"
	TokenEndpoint     = "https://api.hubapi.com/oauth/v1/token"
)

// Local callback server configuration. The port and path are fixed because
// they must match the redirect URI registered on the HubSpot app.
const (
	CallbackPort = 3847
	CallbackPath = "/callback"
	CallbackURL  = "http://localhost:3847/callback"
)

// RefreshBuffer is the safety margin before actual token expiry. A token
// inside the buffer is treated as already expired so there is time to
// refresh it before use.
const RefreshBuffer = 5 * time.Minute

// CallbackTimeout is how long the callback server waits for the user to
// complete authorization in the browser.
const CallbackTimeout = 2 * time.Minute

// DefaultScopes are the scopes requested for CLI functionality.
var DefaultScopes = []string{
	"crm.objects.contacts.read",
	"crm.objects.contacts.write",
	"crm.objects.companies.read",
	"crm.objects.companies.write",
	"crm.objects.deals.read",
	"crm.objects.deals.write",
	"crm.objects.owners.read",
	"crm.schemas.contacts.read",
	"crm.schemas.contacts.write",
	"crm.schemas.companies.read",
	"crm.schemas.deals.read",
	"oauth",
	"tickets",
	"account-info.security.read",
}
