package google

import (
	"context"
	"fmt"
	"strings"

	tasks "google.golang.org/api/tasks/v1"

	"kiwi/internal/service"
)

// ResolveList finds a task list by title (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, title string) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	want := strings.ToLower(strings.TrimSpace(title))

	var matches []service.TaskList
	err := c.tasks.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, l := range resp.Items {
			if strings.ToLower(strings.TrimSpace(l.Title)) == want {
				matches = append(matches, service.TaskList{ID: l.Id, Title: l.Title})
			}
		}
		return nil
	})
	if err != nil {
		return service.TaskList{}, wrapError(err)
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

// CreateList creates a task list.
func (c *Client) CreateList(ctx context.Context, title string) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	l, err := c.tasks.Tasklists.Insert(&tasks.TaskList{Title: title}).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	c.logger.Printf("created task list %q (%s)", l.Title, l.Id)
	return service.TaskList{ID: l.Id, Title: l.Title}, nil
}

// ListTasks returns every task in the list, completed and hidden included.
func (c *Client) ListTasks(ctx context.Context, listID string) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []service.Task
	err := c.tasks.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				result = append(result, service.Task{
					ID:     t.Id,
					Title:  t.Title,
					Notes:  t.Notes,
					Status: t.Status,
					Due:    t.Due,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// CreateTask inserts a task.
func (c *Client) CreateTask(ctx context.Context, listID string, t service.Task) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.tasks.Tasks.Insert(listID, toAPITask(t)).Context(ctx).Do()
	return wrapError(err)
}

// UpdateTask patches title, notes, status and due date.
func (c *Client) UpdateTask(ctx context.Context, listID string, t service.Task) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.tasks.Tasks.Patch(listID, t.ID, toAPITask(t)).Context(ctx).Do()
	return wrapError(err)
}

func toAPITask(t service.Task) *tasks.Task {
	at := &tasks.Task{
		Title:  t.Title,
		Notes:  t.Notes,
		Status: t.Status,
		Due:    t.Due,
	}
	if t.Due == "" {
		at.NullFields = append(at.NullFields, "Due")
	}
	if t.Status != service.StatusCompleted {
		at.NullFields = append(at.NullFields, "Completed")
	}
	return at
}
