package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Notifications struct {
	BreakReminders       *bool `toml:"break_reminders"`
	BreakIntervalMinutes int   `toml:"break_interval_minutes"`
	IdleWarnings         *bool `toml:"idle_warnings"`
}

type Config struct {
	DataDir              string        `toml:"data_dir"`
	IdleThresholdMinutes int           `toml:"idle_threshold_minutes"`
	Notifications        Notifications `toml:"notifications"`
}

// SetDefault fills in zero-valued fields.
func (c *Config) SetDefault() {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.DataDir = filepath.Join(home, ".local", "share", "timely")
	}
	if c.IdleThresholdMinutes <= 0 {
		c.IdleThresholdMinutes = 5
	}
	if c.Notifications.BreakReminders == nil {
		defaultVal := true
		c.Notifications.BreakReminders = &defaultVal
	}
	if c.Notifications.BreakIntervalMinutes <= 0 {
		c.Notifications.BreakIntervalMinutes = 60
	}
	if c.Notifications.IdleWarnings == nil {
		defaultVal := true
		c.Notifications.IdleWarnings = &defaultVal
	}
}

// LoadFromFile reads the config at path. A missing file yields the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var c Config
			c.SetDefault()
			return &c, nil
		}
		return nil, err
	}
	return LoadFromBytes(data)
}

func LoadFromBytes(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c.SetDefault()
	return &c, nil
}
