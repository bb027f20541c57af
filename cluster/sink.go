// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"os"
	"sync"
)

// Sink receives one line per merge event.
type Sink interface {
	Record(line string) error
}

// FileSink appends lines to a text file. The file is opened on the first
// Record and never truncated, so a run without merges leaves no file and
// earlier runs' lines are kept. Safe for concurrent use.
type FileSink struct {
	mu   sync.Mutex
	f    *os.File
	path string
	n    int
}

// NewFileSink returns a sink appending to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the file the sink appends to.
func (s *FileSink) Path() string { return s.path }

// Count returns the number of lines recorded by this sink.
func (s *FileSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.n
}

// Record appends line followed by a newline.
func (s *FileSink) Record(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cluster: open warnings file: %w", err)
		}
		s.f = f
	}
	if _, err := fmt.Fprintln(s.f, line); err != nil {
		return fmt.Errorf("cluster: write warning: %w", err)
	}
	s.n++

	return nil
}

// Close closes the underlying file, if it was opened.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil

	return err
}

// nopSink discards lines.
type nopSink struct{}

func (nopSink) Record(string) error { return nil }
