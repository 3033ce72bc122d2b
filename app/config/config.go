package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

var validate = validator.New()

// Config holds process-wide settings loaded once at startup.
type Config struct {
	Port          string `yaml:"port" validate:"required,numeric"`
	DBDSN         string `yaml:"db_dsn" validate:"required"`
	SessionDir    string `yaml:"session_dir" validate:"required"`
	SessionSecret string `yaml:"session_secret" validate:"required,min=16"`
	SessionMaxAge int    `yaml:"session_max_age" validate:"gte=0"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Port:          "3000",
		DBDSN:         "data/inkwell.db",
		SessionDir:    "data/sessions",
		SessionSecret: "change-me-before-deploying",
		SessionMaxAge: 86400,
	}
}

// Load reads a YAML config file over the defaults and validates the result.
// A missing file is not an error; the PORT environment variable overrides
// whatever the file says.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
