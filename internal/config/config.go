package config

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime configuration. The binary takes no flags and
// reads no environment variables, so every value is fixed at build
// time; Load still validates the set once so a bad edit fails fast at
// startup instead of surfacing as odd server behavior.
type Config struct {
	Server ServerConfig `validate:"required"`
}

type ServerConfig struct {
	Addr             string        `validate:"required,hostname_port"`
	ReadTimeout      time.Duration `validate:"required"`
	WriteTimeout     time.Duration `validate:"required"`
	ShutdownTimeout  time.Duration `validate:"required"`
	CORSAllowOrigins []string      `validate:"required,min=1"`
	CORSAllowMethods []string      `validate:"required,min=1"`
}

// Load returns the validated runtime configuration.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Addr:             "0.0.0.0:8001",
			ReadTimeout:      10 * time.Second,
			WriteTimeout:     10 * time.Second,
			ShutdownTimeout:  5 * time.Second,
			CORSAllowOrigins: []string{"localhost"},
			CORSAllowMethods: []string{http.MethodGet, http.MethodPost},
		},
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}
	return config, nil
}
