// Package google implements service.Service using the Google Tasks and
// Google Calendar APIs.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"kiwi/internal/config"
	"kiwi/internal/service"
)

const (
	// PageSize is the number of items requested per page.
	PageSize = 100

	// APITimeout is the timeout for a single API call.
	APITimeout = 10 * time.Second
)

// Scopes are the OAuth scopes login requests and the client uses.
var Scopes = []string{tasks.TasksScope, calendar.CalendarEventsScope}

var _ service.Service = (*Client)(nil)

// Client implements service.Service.
type Client struct {
	tasks  *tasks.Service
	cal    *calendar.Service
	logger *log.Logger
}

// OAuthConfig reads oauth_client.json from the data directory.
func OAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.OAuthClientFile, err)
	}
	oc, err := googleoauth.ConfigFromJSON(clientJSON, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.OAuthClientFile, err)
	}
	return oc, nil
}

// LoadToken reads a token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.TokenFile, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.TokenFile, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with mode 0600.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// New creates a client from the credentials in the data directory.
// The token refreshes itself as needed.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Client, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: %s not found in %s", service.ErrNotLoggedIn, config.OAuthClientFile, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, service.ErrNotLoggedIn
	}
	oc, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	tok, err := LoadToken(cfg.TokenPath())
	if err != nil {
		return nil, err
	}
	httpClient := oauth2.NewClient(ctx, oc.TokenSource(ctx, tok))
	return NewWithOptions(ctx, logger, option.WithHTTPClient(httpClient))
}

// NewWithOptions creates a client with explicit API options (for testing).
func NewWithOptions(ctx context.Context, logger *log.Logger, opts ...option.ClientOption) (*Client, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	ts, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	cs, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{tasks: ts, cal: cs, logger: logger}, nil
}
