package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"kiwi/internal/task"
)

// Store loads and saves a task list at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a Store for path. A nil logger discards output.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Load reads the data file. A missing file or directory yields an empty list.
func (s *Store) Load() (*task.List, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Printf("no data file at %s", s.path)
		return task.NewList(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	defer f.Close()

	tasks, skipped, err := Decode(f, s.logger)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	s.logger.Printf("loaded %d tasks from %s (%d skipped)", len(tasks), s.path, skipped)
	return task.NewList(tasks...), nil
}

// Save replaces the data file with the contents of l, creating the
// directory if needed.
func (s *Store) Save(l *task.List) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", s.path, err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := Encode(f, l.Tasks()); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	s.logger.Printf("saved %d tasks to %s", l.Len(), s.path)
	return nil
}
