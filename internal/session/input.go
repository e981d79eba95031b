package session

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader supplies one line of user input at a time.
type LineReader interface {
	// ReadLine returns the next line with surrounding whitespace removed.
	// It returns io.EOF once input is exhausted.
	ReadLine() (string, error)
}

type bufferedReader struct {
	r *bufio.Reader
}

// NewLineReader reads lines of any length from r. A final line without a
// trailing newline is still returned.
func NewLineReader(r io.Reader) LineReader {
	return &bufferedReader{r: bufio.NewReader(r)}
}

func (r *bufferedReader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Script is a LineReader over a fixed list of lines, used to drive a session
// without a terminal.
type Script struct {
	lines []string
	next  int
}

// NewScript creates a Script returning lines in order, then io.EOF.
func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

// ReadLine implements LineReader.
func (s *Script) ReadLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return strings.TrimSpace(line), nil
}

// Remaining returns the number of unread lines.
func (s *Script) Remaining() int {
	return len(s.lines) - s.next
}
