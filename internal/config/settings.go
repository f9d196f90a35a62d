package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the optional remote sync preferences read from kiwi.yaml.
type Settings struct {
	// TaskList is the Google Tasks list push writes to.
	TaskList string `yaml:"tasklist"`

	// Calendar is the Google Calendar ID calendar writes to.
	Calendar string `yaml:"calendar"`

	// EventMinutes is the length of the calendar block for a deadline.
	EventMinutes int `yaml:"event_minutes"`
}

// ApplyDefaults fills unset fields.
func (s *Settings) ApplyDefaults() {
	if s.TaskList == "" {
		s.TaskList = "Kiwi"
	}
	if s.Calendar == "" {
		s.Calendar = "primary"
	}
	if s.EventMinutes <= 0 {
		s.EventMinutes = 30
	}
}

// LoadSettings reads path. A missing file yields defaults.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, &s); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
		}
	}
	s.ApplyDefaults()
	return &s, nil
}

// Settings loads the settings file in the data directory.
func (c *Config) Settings() (*Settings, error) {
	return LoadSettings(c.SettingsPath())
}
