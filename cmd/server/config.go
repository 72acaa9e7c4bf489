package main

import "fmt"

// AppConfig holds all configuration for the activities server.
type AppConfig struct {
	Server   ServerConfig   `json:"server"`
	Features FeaturesConfig `json:"features"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host      string `json:"host" env:"SERVER_HOST" default:"localhost"`
	Port      string `json:"port" env:"SERVER_PORT" default:"8000"`
	StaticDir string `json:"static_dir" env:"SERVER_STATIC_DIR" default:"./public"`
}

// FeaturesConfig toggles the gated product variants. Both default to the
// behavior the school actually runs: strict address validation and the
// unregister flow enabled.
type FeaturesConfig struct {
	EmailValidation bool `json:"email_validation" env:"FEATURE_EMAIL_VALIDATION" default:"true"`
	Unregister      bool `json:"unregister" env:"FEATURE_UNREGISTER" default:"true"`
}

// Validate implements config.Validable.
func (c *AppConfig) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("config: server port required")
	}
	return nil
}
