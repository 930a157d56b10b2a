package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
)

type GlobalConfig struct {
	Database Database `mapstructure:",squash"`
	Redis    Redis    `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	OAuth2   OAuth2   `mapstructure:",squash"`
	RPC      RPC      `mapstructure:",squash"`
	Log      Log      `mapstructure:",squash"`
	Trace    Trace    `mapstructure:",squash"`
	Storage  Storage  `mapstructure:",squash"`
	Document Document `mapstructure:",squash"`
	Rules    Rules    `mapstructure:",squash"`
}

var config = &GlobalConfig{}

func init() {
	if err := defaults.Set(config); err != nil {
		fmt.Printf("set default err: %+v", err)
		os.Exit(1)
	}
}

func Global() *GlobalConfig {
	return config
}

// Validate reports settings the api server cannot start without.
func (c *GlobalConfig) Validate() error {
	if c.Auth.AuthSource != AuthJWT && c.Auth.AuthSource != AuthOAuth2 {
		return fmt.Errorf("unknown AUTH_SOURCE %q", c.Auth.AuthSource)
	}
	if c.Auth.AuthSource == AuthJWT && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_SOURCE is %s", AuthJWT)
	}
	if c.Auth.AuthSource == AuthOAuth2 && c.OAuth2.ClientID == "" {
		return fmt.Errorf("OAUTH2_CLIENT_ID is required when AUTH_SOURCE is %s", AuthOAuth2)
	}
	if c.Storage.Endpoint != "" && c.Storage.Bucket == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_ENDPOINT is set")
	}
	return nil
}
