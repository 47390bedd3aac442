// Package logging builds the structured logger shared by the CLI and TUI.
//
// The TUI owns the terminal, so log output goes to a file or nowhere,
// never to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// New returns a text logger writing to w at level. Every record carries a
// session_id so interleaved runs in one log file can be told apart. An
// empty sessionID gets a fresh UUID.
func New(w io.Writer, level slog.Level, sessionID string) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("session_id", sessionID)
}

// OpenFile opens path for appending, creating parent directories. An empty
// path yields io.Discard and a no-op close.
func OpenFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}
