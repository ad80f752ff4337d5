package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultHost = "127.0.0.1"
	defaultPort = 9091
)

// targetConfig is the layered configuration for reaching the target: defaults,
// then the optional YAML file, then environment variables, then flags (applied
// by commandParams.applyOverrides).
type targetConfig struct {
	Host        string        `yaml:"host" env:"WALRUS_TARGET_HOST"`
	Port        int           `yaml:"port" env:"WALRUS_TARGET_PORT"`
	APIKey      string        `yaml:"apiKey" env:"WALRUS_API_KEY"`
	WrongAPIKey string        `yaml:"wrongApiKey" env:"WALRUS_WRONG_API_KEY"`
	Timeout     time.Duration `yaml:"timeout" env:"WALRUS_TIMEOUT"`
	Topic       string        `yaml:"topic" env:"WALRUS_TOPIC"`
	Value       string        `yaml:"value" env:"WALRUS_VALUE"`
}

func loadTargetConfig(ctx context.Context, path string) (targetConfig, error) {
	cfg := targetConfig{
		Host:    defaultHost,
		Port:    defaultPort,
		Timeout: walrus.DefaultTimeout,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("cannot read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config file %q: %w", path, err)
		}
	}

	// A .env file next to the harness is a convenient place for the API key.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, err
	}
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c targetConfig) addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c targetConfig) validate() error {
	if c.Host == "" {
		return errors.New("target host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid target port %d", c.Port)
	}
	if c.APIKey == "" {
		return errors.New("an API key is required (use -key, WALRUS_API_KEY, or the config file)")
	}
	return nil
}
