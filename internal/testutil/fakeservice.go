// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"kiwi/internal/service"
)

var _ service.Service = (*FakeService)(nil)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	lists  []service.TaskList
	tasks  map[string][]service.Task   // listID -> tasks
	events map[string][]service.Event  // calendarID -> events
	nextID int

	// Error injection for testing
	ResolveListErr error
	CreateListErr  error
	ListTasksErr   error
	CreateTaskErr  error
	UpdateTaskErr  error
	FindEventErr   error
	CreateEventErr error
	UpdateEventErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:  make(map[string][]service.Task),
		events: make(map[string][]service.Event),
	}
}

func (f *FakeService) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s%d", prefix, f.nextID)
}

// AddList adds a list to the fake service.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
	if _, ok := f.tasks[id]; !ok {
		f.tasks[id] = nil
	}
}

// AddTask adds a task to a list.
func (f *FakeService) AddTask(listID string, t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], t)
}

// AddEvent adds an event to a calendar.
func (f *FakeService) AddEvent(calendarID string, e service.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[calendarID] = append(f.events[calendarID], e)
}

// Lists returns a copy of the task lists.
func (f *FakeService) Lists() []service.TaskList {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.TaskList(nil), f.lists...)
}

// Tasks returns a copy of the tasks in a list.
func (f *FakeService) Tasks(listID string) []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.Task(nil), f.tasks[listID]...)
}

// Events returns a copy of the events in a calendar.
func (f *FakeService) Events(calendarID string) []service.Event {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.Event(nil), f.events[calendarID]...)
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, title string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	want := strings.ToLower(strings.TrimSpace(title))
	var matches []service.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: list %s", service.ErrNotFound, title)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, fmt.Errorf("%w: list name %s", service.ErrAmbiguous, title)
	}
}

// CreateList implements service.Service.
func (f *FakeService) CreateList(ctx context.Context, title string) (service.TaskList, error) {
	if f.CreateListErr != nil {
		return service.TaskList{}, f.CreateListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	l := service.TaskList{ID: f.newID("list"), Title: title}
	f.lists = append(f.lists, l)
	f.tasks[l.ID] = nil
	return l, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, listID string) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, service.ErrNotFound
	}
	return append([]service.Task(nil), tasks...), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID string, t service.Task) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[listID]; !ok {
		return service.ErrNotFound
	}
	t.ID = f.newID("task")
	f.tasks[listID] = append(f.tasks[listID], t)
	return nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, listID string, t service.Task) error {
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks := f.tasks[listID]
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = t
			return nil
		}
	}
	return service.ErrNotFound
}

// FindEvent implements service.Service.
func (f *FakeService) FindEvent(ctx context.Context, calendarID, key string) (service.Event, error) {
	if f.FindEventErr != nil {
		return service.Event{}, f.FindEventErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, e := range f.events[calendarID] {
		if e.Key == key {
			return e, nil
		}
	}
	return service.Event{}, service.ErrNotFound
}

// CreateEvent implements service.Service.
func (f *FakeService) CreateEvent(ctx context.Context, calendarID string, e service.Event) error {
	if f.CreateEventErr != nil {
		return f.CreateEventErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	e.ID = f.newID("event")
	f.events[calendarID] = append(f.events[calendarID], e)
	return nil
}

// UpdateEvent implements service.Service.
func (f *FakeService) UpdateEvent(ctx context.Context, calendarID string, e service.Event) error {
	if f.UpdateEventErr != nil {
		return f.UpdateEventErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	events := f.events[calendarID]
	for i := range events {
		if events[i].ID == e.ID {
			events[i] = e
			return nil
		}
	}
	return service.ErrNotFound
}
