// Package config holds application constants and the on-disk YAML
// configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the user-editable configuration. The completed status is
// the admin-configured status id that counts a task as done for
// progress aggregation.
type Config struct {
	CompletedStatus   string `yaml:"completed_status"`
	Theme             string `yaml:"theme"`
	DataDir           string `yaml:"data_dir"`
	ShowCompleted     bool   `yaml:"show_completed"`
	ShowEmptyProjects bool   `yaml:"show_empty_projects"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		CompletedStatus:   DefaultCompletedStatus,
		Theme:             DefaultTheme,
		ShowCompleted:     true,
		ShowEmptyProjects: true,
	}
}

// Parse decodes and validates a configuration payload.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg.normalized(), nil
}

// Load reads the configuration file at path. A missing file is treated
// as "use defaults" to simplify first run; the TEAMBOARD_DATA_DIR
// environment variable overrides the data directory either way.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(Default()), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

func (c Config) normalized() Config {
	c.CompletedStatus = strings.TrimSpace(c.CompletedStatus)
	if c.CompletedStatus == "" {
		c.CompletedStatus = DefaultCompletedStatus
	}
	c.Theme = strings.TrimSpace(c.Theme)
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	c.DataDir = strings.TrimSpace(c.DataDir)
	return c
}

func applyEnv(c Config) Config {
	if dir := strings.TrimSpace(os.Getenv("TEAMBOARD_DATA_DIR")); dir != "" {
		c.DataDir = dir
	}
	return c
}
