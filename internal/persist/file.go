// Package persist reads and writes the task list as a single JSON file.
package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fentz26/taskmenu/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// File is the task file at a fixed path on an afero filesystem.
// Use afero.NewOsFs() for real files or afero.NewMemMapFs() in tests.
type File struct {
	fs   afero.Fs
	path string
	log  *log.Entry

	// unreadable is set when Load found a file it could not read. Such a
	// file is never replaced.
	unreadable bool
}

// NewFile creates a File. A nil logger falls back to the standard logger.
func NewFile(fs afero.Fs, path string, logger *log.Entry) *File {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &File{
		fs:   fs,
		path: path,
		log:  logger.WithField("file", path),
	}
}

// NewOsFile creates a File on the operating system filesystem.
func NewOsFile(path string, logger *log.Entry) *File {
	return NewFile(afero.NewOsFs(), path, logger)
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Load reads every task from the file.
//
// A missing file returns ErrNoData. A file that exists but cannot be read
// returns ErrUnreadable, and later writes refuse to replace it. A file whose
// content is not a JSON array of tasks returns ErrMalformed. An empty file
// yields an empty list.
func (f *File) Load() ([]models.Task, error) {
	fh, err := f.fs.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.log.Debug("no task file")
			return nil, ErrNoData
		}
		f.unreadable = true
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	data, err := io.ReadAll(fh)
	fh.Close()
	if err != nil {
		f.unreadable = true
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	f.unreadable = false

	if len(bytes.TrimSpace(data)) == 0 {
		f.log.Debug("task file is empty")
		return []models.Task{}, nil
	}

	var tasks []models.Task
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// Reject trailing content after the array.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after task list", ErrMalformed)
	}
	if tasks == nil {
		// "null" is not a task list.
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformed)
	}

	f.log.WithField("count", len(tasks)).Debug("loaded tasks")
	return tasks, nil
}

// Encode serializes tasks into the file format. A nil list encodes as [].
func (f *File) Encode(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// Write replaces the file with data. The buffer goes to a temp file in the
// same directory which is then renamed over the target, so the previous file
// survives any failure. The target keeps its permissions, or gets 0644 when
// it is new.
func (f *File) Write(data []byte) error {
	if f.unreadable {
		return fmt.Errorf("%w: %w: refusing to replace a file that could not be read", ErrWrite, ErrUnreadable)
	}

	mode := os.FileMode(0o644)
	if fi, err := f.fs.Stat(f.path); err == nil {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(f.path)
	tmp, err := afero.TempFile(f.fs, dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWrite, err)
	}
	tmpPath := tmp.Name()

	fail := func(step string, err error) error {
		tmp.Close()
		if rmErr := f.fs.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			f.log.WithError(rmErr).Warn("failed to remove temp file")
		}
		return fmt.Errorf("%w: %s: %v", ErrWrite, step, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := f.fs.Chmod(tmpPath, mode); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close", err)
	}
	if err := f.fs.Rename(tmpPath, f.path); err != nil {
		return fail("rename", err)
	}

	f.log.WithField("bytes", len(data)).Debug("wrote task file")
	return nil
}

// Save encodes tasks and writes them to the file.
func (f *File) Save(tasks []models.Task) error {
	data, err := f.Encode(tasks)
	if err != nil {
		return err
	}
	return f.Write(data)
}
