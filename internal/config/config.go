package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present; a missing file is not an error.
const DefaultEnvFile = ".env"

// Config holds the runtime settings of pulse.
type Config struct {
	APIURL      string        `env:"PULSE_API_URL" envDefault:"http://localhost:8000/api"`
	Token       string        `env:"PULSE_TOKEN"`
	HTTPTimeout time.Duration `env:"PULSE_HTTP_TIMEOUT" envDefault:"10s"`
	Addr        string        `env:"PULSE_ADDR" envDefault:":8080"`
	LogFile     string        `env:"PULSE_LOG_FILE"`
	Telemetry   Telemetry
}

// Telemetry configures OpenTelemetry tracing. Tracing stays off unless an
// endpoint is set.
type Telemetry struct {
	Endpoint string `env:"PULSE_OTEL_ENDPOINT"`
	Enabled  bool   `env:"PULSE_OTEL_ENABLED" envDefault:"true"`
}

// Active reports whether spans should be exported.
func (t Telemetry) Active() bool {
	return t.Enabled && strings.TrimSpace(t.Endpoint) != ""
}

// Load reads envFile (DefaultEnvFile when empty) into the process
// environment without overriding existing variables, then parses Config.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return Config{}, errors.New("PULSE_API_URL must not be empty")
	}
	return cfg, nil
}
