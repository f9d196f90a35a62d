// Package service defines the backend-agnostic interface used to mirror the
// local task list into remote task and calendar services.
package service

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a list or event does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is returned when a name matches more than one list.
	ErrAmbiguous = errors.New("ambiguous")

	// ErrNotLoggedIn is returned when credentials are missing.
	ErrNotLoggedIn = errors.New("not logged in (run: kiwi login)")

	// ErrAuth is returned when the stored credentials are rejected.
	ErrAuth = errors.New("token expired or revoked (run: kiwi login)")
)

// Service defines the remote operations push and calendar need.
// Commands never import a Google SDK directly.
type Service interface {
	// ResolveList finds a task list by title (case-insensitive, trimmed).
	// Returns ErrNotFound or ErrAmbiguous.
	ResolveList(ctx context.Context, title string) (TaskList, error)

	// CreateList creates a task list and returns it.
	CreateList(ctx context.Context, title string) (TaskList, error)

	// ListTasks returns every task in a list, completed and hidden included,
	// in API order.
	ListTasks(ctx context.Context, listID string) ([]Task, error)

	// CreateTask inserts t into a list. t.ID is ignored.
	CreateTask(ctx context.Context, listID string, t Task) error

	// UpdateTask overwrites the task with ID t.ID.
	UpdateTask(ctx context.Context, listID string, t Task) error

	// FindEvent returns the event carrying the private key, or ErrNotFound.
	FindEvent(ctx context.Context, calendarID, key string) (Event, error)

	// CreateEvent inserts e into a calendar. e.ID is ignored.
	CreateEvent(ctx context.Context, calendarID string, e Event) error

	// UpdateEvent overwrites the event with ID e.ID.
	UpdateEvent(ctx context.Context, calendarID string, e Event) error
}
