// Package config handles the data directory and file paths.
package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	// AppName is the application name.
	AppName = "kiwi"

	// DefaultDir is the data directory, relative to the working directory.
	DefaultDir = "data"

	// DataFile is the task list filename.
	DataFile = "kiwi.txt"

	// SettingsFile is the optional YAML settings filename.
	SettingsFile = "kiwi.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Config holds paths and flags shared by every command.
type Config struct {
	// Dir holds the data file, settings and credentials.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config for dir, or DefaultDir if dir is empty.
func New(dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDir
	}
	return &Config{Dir: dir}, nil
}

// DataPath returns the path to the task list file.
func (c *Config) DataPath() string {
	return filepath.Join(c.Dir, DataFile)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the data directory with mode 0700 if it doesn't exist.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// Logger returns a debug logger writing to w when Debug is set, and a
// discarding logger otherwise.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if !c.Debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "debug: ", 0)
}
