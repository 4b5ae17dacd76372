// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Welcome to Go Hello World!", cfg.Greeting.Welcome)
	assert.Equal(t, "World", cfg.Greeting.DefaultName)
	assert.Equal(t, "Enter your name: ", cfg.Greeting.Prompt)
	assert.Equal(t, 5, cfg.Sum.A)
	assert.Equal(t, 3, cfg.Sum.B)
	assert.Empty(t, cfg.Parity.Checks)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(t *testing.T) string // Returns the path passed to Load
		wantErr     bool
		errContains string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid configuration file",
			setupFunc: func(t *testing.T) string {
				return writeConfig(t, t.TempDir(), `
greeting:
  welcome: "Welcome!"
  default_name: "Gopher"
  prompt: "Name? "
sum:
  a: 1000
  b: 2000
parity:
  checks: [1, 2, 3]
logging:
  format: json
  level: debug
`)
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Welcome!", cfg.Greeting.Welcome)
				assert.Equal(t, "Gopher", cfg.Greeting.DefaultName)
				assert.Equal(t, "Name? ", cfg.Greeting.Prompt)
				assert.Equal(t, 1000, cfg.Sum.A)
				assert.Equal(t, 2000, cfg.Sum.B)
				assert.Equal(t, []int32{1, 2, 3}, cfg.Parity.Checks)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "debug", cfg.Logging.Level)
			},
		},
		{
			name: "missing file falls back to defaults",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial file keeps remaining defaults",
			setupFunc: func(t *testing.T) string {
				return writeConfig(t, t.TempDir(), `
sum:
  a: 7
`)
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 7, cfg.Sum.A)
				assert.Equal(t, 3, cfg.Sum.B)
				assert.Equal(t, "World", cfg.Greeting.DefaultName)
				assert.Empty(t, cfg.Parity.Checks)
			},
		},
		{
			name: "invalid yaml syntax",
			setupFunc: func(t *testing.T) string {
				return writeConfig(t, t.TempDir(), `
greeting:
  welcome: "test"
  invalid yaml syntax here: [
`)
			},
			wantErr:     true,
			errContains: "failed to parse config",
		},
		{
			name: "path is a directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:     true,
			errContains: "failed to read config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setupFunc(t)

			cfg, err := Load(path)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoad_PathResolution(t *testing.T) {
	t.Run("environment variable", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "greeting:\n  default_name: \"Env\"\n")
		t.Setenv(EnvConfigPath, path)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Env", cfg.Greeting.DefaultName)
	})

	t.Run("working directory file", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		dir := t.TempDir()
		writeConfig(t, dir, "greeting:\n  default_name: \"Cwd\"\n")
		chdir(t, dir)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Cwd", cfg.Greeting.DefaultName)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		chdir(t, t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name:        "missing welcome",
			modify:      func(c *Config) { c.Greeting.Welcome = "" },
			wantErr:     true,
			errContains: "welcome message is required",
		},
		{
			name:        "unknown format",
			modify:      func(c *Config) { c.Logging.Format = "xml" },
			wantErr:     true,
			errContains: "unknown logging format",
		},
		{
			name:        "unknown level",
			modify:      func(c *Config) { c.Logging.Level = "loud" },
			wantErr:     true,
			errContains: "unknown logging level",
		},
		{
			name:   "empty name is allowed",
			modify: func(c *Config) { c.Greeting.DefaultName = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			assert.NoError(t, err)
		})
	}
}
