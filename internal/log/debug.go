// Package log routes diagnostic output to an optional debug file.
//
// Messages written before a destination is chosen are held in memory and
// flushed once SetFile is called with a path. SetFile("") drops them. At most
// maxPending bytes are held; older lines are dropped first.
package log

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"sync"
)

const maxPending = 64 << 10

type sink struct {
	mu      sync.Mutex
	file    *os.File
	pending []byte
	dropped int // bytes discarded from the front of pending
	muted   bool
}

var (
	out    = &sink{}
	logger = log.New(out, "", log.Ldate|log.Ltime|log.Lmicroseconds)
)

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.muted:
		return len(p), nil
	case s.file != nil:
		n, err := s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	}

	s.pending = append(s.pending, p...)
	s.trim()
	return len(p), nil
}

// trim drops whole lines from the front of pending until it fits maxPending.
func (s *sink) trim() {
	over := len(s.pending) - maxPending
	if over <= 0 {
		return
	}
	cut := over
	if i := bytes.IndexByte(s.pending[over:], '\n'); i >= 0 && over+i+1 < len(s.pending) {
		cut = over + i + 1
	}
	s.dropped += cut
	s.pending = append(s.pending[:0], s.pending[cut:]...)
}

// SetFile directs log output to path, creating it if needed.
// An empty path discards pending and future messages.
func SetFile(path string) error {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file != nil {
		_ = out.file.Close()
		out.file = nil
	}

	if path == "" {
		out.mute()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		out.mute()
		return err
	}

	out.file = f
	out.muted = false
	if out.dropped > 0 {
		_, _ = fmt.Fprintf(f, "[log] %d bytes dropped before the log file was set\n", out.dropped)
	}
	if len(out.pending) > 0 {
		_, _ = f.Write(out.pending)
	}
	_ = f.Sync()
	out.pending = nil
	out.dropped = 0
	return nil
}

func (s *sink) mute() {
	s.muted = true
	s.pending = nil
	s.dropped = 0
}

// Printf writes a formatted message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Logger returns a standard logger with the given prefix that writes to the debug sink.
func Logger(prefix string) *log.Logger {
	return log.New(out, prefix, log.Ldate|log.Ltime|log.Lmicroseconds)
}

// Close closes the debug file if one is open.
func Close() error {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file == nil {
		return nil
	}
	err := out.file.Close()
	out.file = nil
	return err
}
