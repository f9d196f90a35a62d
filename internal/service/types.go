package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task statuses.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// EventKeyProperty is the private extended property that links a calendar
// event to a local task.
const EventKeyProperty = "kiwi_key"

var eventKeySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("kiwi:event"))

// EventKey derives the EventKeyProperty value for a task description. It is
// a name-based UUID of the lowercased description, so it is safe inside a
// privateExtendedProperty filter whatever the description contains.
func EventKey(description string) string {
	return uuid.NewSHA1(eventKeySpace, []byte(strings.ToLower(description))).String()
}

// Task represents a single remote task item.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Status string // StatusNeedsAction or StatusCompleted
	Due    string // RFC3339; the API keeps the date only
}

// TaskList represents a remote task list.
type TaskList struct {
	ID    string
	Title string
}

// Event represents a timed calendar event.
type Event struct {
	ID          string
	Key         string // value of EventKeyProperty
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}
