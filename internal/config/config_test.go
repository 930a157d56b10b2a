package config

import (
	"testing"

	"github.com/creasty/defaults"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GlobalConfig)
		wantErr bool
	}{
		{name: "jwt without secret", mutate: func(*GlobalConfig) {}, wantErr: true},
		{name: "jwt with secret", mutate: func(c *GlobalConfig) { c.Auth.JWTSecret = "s" }},
		{name: "unknown source", mutate: func(c *GlobalConfig) { c.Auth.AuthSource = "ldap" }, wantErr: true},
		{name: "oauth2 without client", mutate: func(c *GlobalConfig) { c.Auth.AuthSource = AuthOAuth2 }, wantErr: true},
		{name: "oauth2 with client", mutate: func(c *GlobalConfig) {
			c.Auth.AuthSource = AuthOAuth2
			c.OAuth2.ClientID = "tracker"
		}},
		{name: "storage without bucket", mutate: func(c *GlobalConfig) {
			c.Auth.JWTSecret = "s"
			c.Storage.Endpoint = "minio:9000"
			c.Storage.Bucket = ""
		}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &GlobalConfig{}
			if err := defaults.Set(c); err != nil {
				t.Fatalf("defaults: %v", err)
			}
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	c := &GlobalConfig{}
	if err := defaults.Set(c); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if c.Rules.ProjectLocationPrefix != "NCN" || c.Auth.AuthSource != AuthJWT || c.Database.SSLMode != "disable" {
		t.Fatalf("unexpected defaults %+v", c)
	}
}
