package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hubspot-cli/internal/config"
	"hubspot-cli/internal/oauth"
)

var (
	authToken         string
	loginClientID     string
	loginClientSecret string
)

var (
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Configure HubSpot authentication (Private App Token or OAuth)",
		Long: `Configure HubSpot authentication.

Without arguments, configures a Private App access token interactively.

Subcommands:
  hs auth login    Authenticate with OAuth 2.0 (opens a browser)
  hs auth logout   Clear OAuth credentials
  hs auth status   Show current authentication status`,
		RunE: runAuth,
	}

	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Authenticate with HubSpot using OAuth 2.0",
		Long: `Authenticate with HubSpot using the OAuth 2.0 Authorization Code flow.

Requires a HubSpot App. Client credentials are resolved in order from
--client-id/--client-secret flags, the HUBSPOT_CLIENT_ID and
HUBSPOT_CLIENT_SECRET environment variables, and the previously saved
app config.`,
		RunE: runAuthLogin,
	}

	authLogoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Clear OAuth credentials and logout",
		RunE:  runAuthLogout,
	}

	authStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show current authentication status",
		RunE:  runAuthStatus,
	}
)

func runAuth(cmd *cobra.Command, args []string) error {
	s, err := store()
	if err != nil {
		return err
	}
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	if cfg.HasToken() && authToken == "" {
		fmt.Println("Already configured with a Private App Token.")
		fmt.Println(`Run "hs check" to verify your connection.`)
		fmt.Printf("To re-authenticate, delete %s and run \"hs auth\" again.\n", s.Path())
		return nil
	}

	token := authToken
	if token == "" {
		fmt.Println("HubSpot CLI Authentication - Private App Token")
		fmt.Println()
		fmt.Println("To get a Private App access token:")
		fmt.Println("1. Go to your HubSpot account Settings")
		fmt.Println("2. Navigate to Integrations > Private Apps")
		fmt.Println("3. Create a Private App with the CRM read/write scopes you need")
		fmt.Println("4. Copy the access token (starts with pat-)")
		fmt.Println()
		token, err = promptForToken()
		if err != nil {
			return err
		}
	}

	if token == "" {
		return fmt.Errorf("no token provided")
	}
	if !strings.HasPrefix(token, "pat-") {
		fmt.Println(`Warning: token does not start with "pat-". Make sure you are using a Private App token.`)
	}

	if err = s.SetAccessToken(token); err != nil {
		return err
	}
	if err = s.SetAuthMethod(config.AuthMethodToken); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println()
	fmt.Println(green("Access token saved successfully!"))
	fmt.Println(`Run "hs check" to verify the connection.`)
	return nil
}

func promptForToken() (string, error) {
	fmt.Print("Enter your HubSpot Private App access token: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	s, err := store()
	if err != nil {
		return err
	}
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	environ, _ := LoadEnv()

	app := oauth.AppConfig{ClientID: loginClientID, ClientSecret: loginClientSecret}
	if app.ClientID == "" {
		app.ClientID = environ.ClientID
	}
	if app.ClientSecret == "" {
		app.ClientSecret = environ.ClientSecret
	}
	if cfg.OAuthApp != nil {
		if app.ClientID == "" {
			app.ClientID = cfg.OAuthApp.ClientID
		}
		if app.ClientSecret == "" {
			app.ClientSecret = cfg.OAuthApp.ClientSecret
		}
	}

	if app.ClientID == "" || app.ClientSecret == "" {
		fmt.Println("OAuth requires a HubSpot App with a Client ID and Secret.")
		fmt.Println()
		fmt.Println("To create a HubSpot App:")
		fmt.Println("1. Go to https://developers.hubspot.com/")
		fmt.Println("2. Create or select an App, then open App Settings > Auth")
		fmt.Println("3. Copy the Client ID and Client Secret")
		fmt.Printf("4. Add redirect URI: %s\n", oauth.CallbackURL)
		fmt.Println()
		fmt.Println("Then run:")
		fmt.Println("  hs auth login --client-id <YOUR_CLIENT_ID> --client-secret <YOUR_SECRET>")
		fmt.Println()
		fmt.Println("Or set HUBSPOT_CLIENT_ID and HUBSPOT_CLIENT_SECRET and run:")
		fmt.Println("  hs auth login")
		return fmt.Errorf("missing OAuth client credentials")
	}

	fmt.Println("Starting OAuth login flow...")
	flow := &oauth.Flow{App: app, Scopes: oauth.DefaultScopes}
	creds, err := flow.Login(cmd.Context())
	if err != nil {
		return fmt.Errorf("OAuth authentication failed: %w", err)
	}

	// Persist only after the whole flow succeeded.
	if err = s.SetOAuthApp(app); err != nil {
		return err
	}
	if err = s.SetOAuthCredentials(creds); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println()
	fmt.Println(green("OAuth authentication successful!"))
	fmt.Printf("Token expires in: %s\n", formatTimeRemaining(creds.TimeUntilExpiry()))
	fmt.Println(`Run "hs check" to verify the connection.`)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	s, err := store()
	if err != nil {
		return err
	}
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	if !cfg.HasOAuth() {
		fmt.Println("Not currently authenticated with OAuth.")
		return nil
	}

	if err = s.ClearOAuth(); err != nil {
		return err
	}
	fmt.Println("OAuth credentials cleared successfully.")
	fmt.Println("You have been logged out.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	s, err := store()
	if err != nil {
		return err
	}
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Println("Authentication Status")
	fmt.Println()

	switch {
	case cfg.AuthMethod == config.AuthMethodOAuth && cfg.HasOAuth():
		creds := cfg.OAuth
		fmt.Printf("  %s: OAuth 2.0\n", cyan("Method"))
		if creds.Expired() {
			fmt.Printf("  %s: Expired (will refresh on next request)\n", cyan("Token status"))
			fmt.Printf("  %s: now\n", cyan("Token expires"))
		} else {
			fmt.Printf("  %s: Valid\n", cyan("Token status"))
			fmt.Printf("  %s: in %s\n", cyan("Token expires"), formatTimeRemaining(creds.TimeUntilExpiry()))
		}
		if len(creds.Scopes) > 0 {
			fmt.Printf("  %s: %s\n", cyan("Scopes"), strings.Join(creds.Scopes, ", "))
		}
	case cfg.HasToken():
		fmt.Printf("  %s: Private App Token\n", cyan("Method"))
		fmt.Printf("  %s: Configured\n", cyan("Status"))
	default:
		fmt.Println("  Status: Not authenticated")
		fmt.Println()
		fmt.Println("To authenticate:")
		fmt.Println("  hs auth          - Use a Private App Token")
		fmt.Println("  hs auth login    - Use OAuth 2.0")
	}

	fmt.Printf("\nConfig file: %s\n", s.Path())
	return nil
}

// formatTimeRemaining renders a duration as a short human-readable string.
func formatTimeRemaining(d time.Duration) string {
	if d <= 0 {
		return "expired"
	}

	seconds := int(d.Seconds())
	minutes := seconds / 60
	hours := minutes / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	}
	if minutes > 0 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%d seconds", seconds)
}

func initAuthCommands() {
	authCmd.Flags().StringVarP(&authToken, "token", "t", "", "Private App access token (or enter interactively)")
	authLoginCmd.Flags().StringVar(&loginClientID, "client-id", "", "OAuth Client ID (or set HUBSPOT_CLIENT_ID)")
	authLoginCmd.Flags().StringVar(&loginClientSecret, "client-secret", "", "OAuth Client Secret (or set HUBSPOT_CLIENT_SECRET)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	RootCmd.AddCommand(authCmd)
}
