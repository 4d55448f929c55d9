package cli

import "github.com/caarlos0/env/v11"

// Env holds environment-provided settings. OAuth client credentials can
// come from here instead of flags or the persisted config.
type Env struct {
	ClientID     string `env:"HUBSPOT_CLIENT_ID"`
	ClientSecret string `env:"HUBSPOT_CLIENT_SECRET"`
	Debug        bool   `env:"HS_DEBUG" envDefault:"false"`
}

// LoadEnv parses the process environment.
func LoadEnv() (Env, error) {
	var e Env
	err := env.Parse(&e)
	return e, err
}
