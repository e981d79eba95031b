// Package store provides the in-memory task list for a taskmenu session.
package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fentz26/taskmenu/internal/models"
)

// Store holds the ordered task list. Insertion order is display order and
// persistence order. Positions passed in are 1-based.
type Store struct {
	tasks []models.Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// FromTasks creates a Store holding a copy of tasks.
func FromTasks(tasks []models.Task) *Store {
	s := &Store{tasks: make([]models.Task, len(tasks))}
	copy(s.tasks, tasks)
	return s
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// List returns a copy of the tasks in order.
func (s *Store) List() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add appends a task.
func (s *Store) Add(task models.Task) {
	s.tasks = append(s.tasks, task)
}

// Complete marks the task at pos as done.
func (s *Store) Complete(pos int) error {
	i, err := s.index(pos)
	if err != nil {
		return err
	}
	s.tasks[i].Done = true
	return nil
}

// Delete removes the task at pos. Later tasks shift down by one.
func (s *Store) Delete(pos int) error {
	i, err := s.index(pos)
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// PurgeCompleted removes every done task, keeping the order of the rest.
// It returns the number of tasks removed.
func (s *Store) PurgeCompleted() int {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Done {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	// Clear the tail so dropped tasks are not retained by the backing array.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = models.Task{}
	}
	s.tasks = kept
	return removed
}

func (s *Store) index(pos int) (int, error) {
	if pos < 1 || pos > len(s.tasks) {
		return 0, fmt.Errorf("position %d of %d: %w", pos, len(s.tasks), ErrInvalidIndex)
	}
	return pos - 1, nil
}

// ParsePosition parses a user-entered 1-based position and checks it against
// length.
func ParsePosition(input string, length int) (int, error) {
	input = strings.TrimSpace(input)
	pos, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", input, ErrNotANumber)
	}
	if pos < 1 || pos > length {
		return 0, fmt.Errorf("position %d of %d: %w", pos, length, ErrInvalidIndex)
	}
	return pos, nil
}
