// Package storage provides the file-backed task list for todo.
package storage

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/model"
)

// DefaultFilePath is the task file used when nothing else is configured.
const DefaultFilePath = "todo_list.txt"

// Store is an ordered task list mirrored to a flat text file.
// Every mutating method rewrites the whole file before returning.
type Store struct {
	path  string
	tasks []model.Task
	log   *log.Logger
}

// Load reads the task file at path.
// A missing file yields an empty store, not an error.
func Load(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Store{path: path, log: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("task file not found, starting empty", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read task file %s: %w", path, err)
	}

	tasks, err := model.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse task file %s: %w", path, err)
	}
	s.tasks = tasks

	s.log.Debug("loaded tasks", "path", path, "count", len(tasks))
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the tasks in list order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task returns the task at the 1-based index.
func (s *Store) Task(index int) (model.Task, error) {
	if err := cli.CheckIndex(index, len(s.tasks)); err != nil {
		return model.Task{}, err
	}
	return s.tasks[index-1], nil
}

// Save rewrites the backing file with the current list, truncating
// whatever was there before.
func (s *Store) Save() error {
	if err := os.WriteFile(s.path, model.Encode(s.tasks), 0644); err != nil {
		return fmt.Errorf("failed to write task file %s: %w", s.path, err)
	}
	s.log.Debug("saved tasks", "path", s.path, "count", len(s.tasks))
	return nil
}

// Add appends one pending task per text, in order, and saves.
func (s *Store) Add(texts []string) error {
	if len(texts) == 0 {
		return &cli.UsageError{Command: "add", Message: "not enough arguments to add a task"}
	}

	for _, text := range texts {
		s.tasks = append(s.tasks, model.NewTask(text))
	}
	return s.Save()
}

// Remove deletes the task at the 1-based index and saves. Later tasks
// move up one position.
func (s *Store) Remove(index int) (model.Task, error) {
	removed, err := s.Task(index)
	if err != nil {
		return model.Task{}, err
	}

	s.tasks = append(s.tasks[:index-1], s.tasks[index:]...)
	return removed, s.Save()
}

// Complete marks the task at the 1-based index done, moves it to the end
// of the list and saves.
func (s *Store) Complete(index int) (model.Task, error) {
	task, err := s.Task(index)
	if err != nil {
		return model.Task{}, err
	}

	done := task.MarkDone()
	s.tasks = append(s.tasks[:index-1], s.tasks[index:]...)
	s.tasks = append(s.tasks, done)
	return done, s.Save()
}

// Edit replaces the task at the 1-based index with a pending task of
// text and saves. The previous done state is discarded.
func (s *Store) Edit(index int, text string) (model.Task, error) {
	if _, err := s.Task(index); err != nil {
		return model.Task{}, err
	}

	task := model.NewTask(text)
	s.tasks[index-1] = task
	return task, s.Save()
}

// Reset removes every task and saves.
func (s *Store) Reset() error {
	s.tasks = nil
	return s.Save()
}
