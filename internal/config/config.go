// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hello-swarm/internal/logging"
)

// DefaultFile is the configuration file looked up in the working directory
const DefaultFile = "greeter.yaml"

// EnvConfigPath overrides the configuration file location
const EnvConfigPath = "GREETER_CONFIG"

// Config represents the complete greeter configuration
type Config struct {
	Greeting GreetingConfig `yaml:"greeting"`
	Sum      SumConfig      `yaml:"sum"`
	Parity   ParityConfig   `yaml:"parity"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GreetingConfig holds the text printed around the greetings
type GreetingConfig struct {
	Welcome     string `yaml:"welcome"`
	DefaultName string `yaml:"default_name"`
	Prompt      string `yaml:"prompt"`
}

// SumConfig holds the two fixed addends
type SumConfig struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// ParityConfig lists the numbers whose parity is reported.
// Nothing is reported unless Checks is set.
type ParityConfig struct {
	Checks []int32 `yaml:"checks"`
}

// LoggingConfig controls the diagnostic logger
type LoggingConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Greeting: GreetingConfig{
			Welcome:     "Welcome to Go Hello World!",
			DefaultName: "World",
			Prompt:      "Enter your name: ",
		},
		Sum: SumConfig{A: 5, B: 3},
		Logging: LoggingConfig{
			Format: logging.FormatText,
			Level:  "info",
		},
	}
}

// Load reads the configuration at path on top of Default().
// An empty path falls back to $GREETER_CONFIG and then to greeter.yaml in
// the working directory. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultFile
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Greeting.Welcome == "" {
		return fmt.Errorf("welcome message is required")
	}

	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("unknown logging format: %q", c.Logging.Format)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("unknown logging level: %q", c.Logging.Level)
	}

	return nil
}
