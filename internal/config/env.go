package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the SSH server settings read from the environment.
type ServerConfig struct {
	Address     string        `env:"CAREERS_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"CAREERS_HOST_KEY"` // Empty: ~/.careers/host_key
	DBPath      string        `env:"CAREERS_DB" envDefault:"~/.careers/results.db"`
	IdleTimeout time.Duration `env:"CAREERS_IDLE_TIMEOUT" envDefault:"30m"`
	WhatsApp    string        `env:"CAREERS_WHATSAPP_NUMBER" envDefault:"51999999999"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer reads ServerConfig from the environment.
func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}
