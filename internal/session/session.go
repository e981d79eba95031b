// Package session runs the interactive task menu.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/fentz26/taskmenu/internal/models"
	"github.com/fentz26/taskmenu/internal/persist"
	"github.com/fentz26/taskmenu/internal/store"
	log "github.com/sirupsen/logrus"
)

// Backend loads and saves the task list. *persist.File implements it.
type Backend interface {
	Path() string
	Load() ([]models.Task, error)
	Encode(tasks []models.Task) ([]byte, error)
	Write(data []byte) error
}

// Session is one run of the menu loop. It owns the store for its lifetime.
type Session struct {
	store   *store.Store
	in      LineReader
	out     io.Writer
	backend Backend
	log     *log.Entry
	st      styles

	state State
	eof   bool
}

// New creates a Session over an already loaded store.
func New(s *store.Store, in LineReader, out io.Writer, backend Backend, logger *log.Entry) *Session {
	return &Session{
		store:   s,
		in:      in,
		out:     out,
		backend: backend,
		log:     orDefault(logger),
		st:      newStyles(out),
		state:   StateMenu,
	}
}

// Store returns the session's task store.
func (s *Session) Store() *store.Store {
	return s.store
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

func orDefault(logger *log.Entry) *log.Entry {
	if logger == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return logger
}

// LoadStore builds the initial store from backend. A missing or unreadable
// file starts an empty store; a malformed file is returned as an error so the
// caller can stop before anything overwrites it. An unreadable file is never
// replaced at exit.
func LoadStore(backend Backend, out io.Writer, logger *log.Entry) (*store.Store, error) {
	logger = orDefault(logger)
	st := newStyles(out)
	tasks, err := backend.Load()
	switch {
	case err == nil:
		fmt.Fprintf(out, "loaded tasks from `%s`\n", backend.Path())
		return store.FromTasks(tasks), nil
	case errors.Is(err, persist.ErrNoData):
		fmt.Fprintf(out, "`%s` is empty, no tasks loaded.\n", backend.Path())
		return store.New(), nil
	case errors.Is(err, persist.ErrUnreadable):
		logger.WithError(err).Warn("task file unreadable, starting empty")
		fmt.Fprintf(out, "`%s` could not be read, no tasks loaded.\n", backend.Path())
		fmt.Fprintln(out, st.err.Render("The file will NOT be replaced on exit; tasks added now cannot be saved until it is readable again."))
		return store.New(), nil
	default:
		logger.WithError(err).Error("task file could not be loaded")
		fmt.Fprintln(out, st.err.Render(fmt.Sprintf("`%s` could not be parsed: %v", backend.Path(), err)))
		fmt.Fprintln(out, "The file was left untouched. Fix or move it, then start again.")
		return nil, fmt.Errorf("load %s: %w", backend.Path(), err)
	}
}

// Run drives the menu until the exit command, then purges completed tasks and
// saves. It returns a non-nil error only if the tasks could not be saved.
func (s *Session) Run() error {
	for {
		s.state = StateMenu
		fmt.Fprint(s.out, s.st.menu())

		line := s.readLine()
		cmd := ParseCommand(line)
		if s.eof {
			cmd = CommandExit
		}
		s.log.WithField("command", cmd).Debug("menu selection")

		switch cmd {
		case CommandView:
			s.view()
		case CommandAdd:
			s.add()
		case CommandComplete:
			s.selectTask("mark as complete", s.store.Complete, "Task %d marked as complete")
		case CommandDelete:
			s.selectTask("delete", s.store.Delete, "Task %d deleted")
		case CommandExit:
			return s.exit()
		}
	}
}

// readLine returns the next line. End of input and read errors yield an
// empty line and set eof, which the menu treats as the exit command.
func (s *Session) readLine() string {
	if s.eof {
		return ""
	}
	line, err := s.in.ReadLine()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.log.WithError(err).Warn("reading input failed, exiting")
		}
		s.eof = true
		return ""
	}
	return line
}

func (s *Session) view() {
	fmt.Fprint(s.out, s.st.taskList(s.store.List()))
}

func (s *Session) add() {
	s.state = StateAwaitingTaskFields

	fmt.Fprintln(s.out, "\nEnter a name for 'new_task':")
	name := s.readLine()

	fmt.Fprintf(s.out, "\nEnter a short description for '%s':\n", name)
	desc := s.readLine()

	fmt.Fprintf(s.out, "\nEnter a due date for '%s':\n", name)
	due := s.readLine()

	if s.eof {
		fmt.Fprintln(s.out, s.st.err.Render("\nInput closed, task not added"))
		return
	}

	s.store.Add(models.NewTask(name, desc, due))
	s.log.WithField("count", s.store.Len()).Debug("task added")
	fmt.Fprintln(s.out, s.st.success.Render(fmt.Sprintf("\nAdded '%s'", name)))
}

// selectTask lists the tasks, reads a position, and applies op to it.
func (s *Session) selectTask(verb string, op func(int) error, done string) {
	s.view()
	s.state = StateAwaitingIndexSelection

	fmt.Fprintf(s.out, "\nSelect a task to %s:\n", verb)
	line := s.readLine()
	if s.eof {
		return
	}

	pos, err := store.ParsePosition(line, s.store.Len())
	if err == nil {
		err = op(pos)
	}
	if err != nil {
		s.log.WithError(err).Debug("invalid selection")
		msg := "Invalid task index!"
		if errors.Is(err, store.ErrNotANumber) {
			msg = "Input must be a valid index!"
		}
		fmt.Fprintln(s.out, s.st.err.Render("\n"+msg))
		return
	}

	fmt.Fprintln(s.out, s.st.success.Render(fmt.Sprintf("\n"+done, pos)))
}

// exit purges completed tasks and writes the rest, reporting each step.
func (s *Session) exit() error {
	s.state = StateExiting

	fmt.Fprintln(s.out, "\nRemoving completed tasks...")
	removed := s.store.PurgeCompleted()
	fmt.Fprintf(s.out, "Completed tasks removed (%d)\n", removed)

	fmt.Fprintln(s.out, "\nSerializing data...")
	data, err := s.backend.Encode(s.store.List())
	if err != nil {
		s.log.WithError(err).Error("serialization failed")
		fmt.Fprintln(s.out, s.st.err.Render(fmt.Sprintf("Serialization failed, your tasks were NOT saved: %v", err)))
		return err
	}
	fmt.Fprintln(s.out, "Data serialized")

	fmt.Fprintf(s.out, "\nSaving work to `%s`...\n", s.backend.Path())
	if err := s.backend.Write(data); err != nil {
		s.log.WithError(err).Error("write failed")
		fmt.Fprintln(s.out, s.st.err.Render(fmt.Sprintf("Writing `%s` failed, your tasks were NOT saved: %v", s.backend.Path(), err)))
		return err
	}
	fmt.Fprintln(s.out, "Work saved")

	s.log.WithField("count", s.store.Len()).Info("session saved")
	fmt.Fprintln(s.out, s.st.success.Render("\nExiting successfully"))
	return nil
}
