// Package logger provides the process-wide structured logger.
//
// Log records go to a file under the state directory, never to the terminal:
// cs hands the terminal over to claude, so anything printed on stderr would
// end up in front of the user.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bikramtuladhar/claude-code-resumer/paths"
)

var (
	root     *slog.Logger
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	mu       sync.Mutex
	logPath  string
	initDone bool
)

// DefaultLogPath returns the default log file path.
func DefaultLogPath() (string, error) {
	dir, err := paths.LogsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cs.log"), nil
}

// SetDebug enables or disables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init initializes the logger with a custom path. Must be called before logging.
// If not called, the default path will be used on first log call.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return open(path)
}

// open creates the log directory and file and installs the root logger.
// Caller must hold mu.
func open(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logPath = path
	logFile = f
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	root.Debug("logger initialized", "path", path)
	return nil
}

// ensureInit initializes the logger with default settings if not already initialized.
// On failure logging is discarded. Caller must hold mu.
func ensureInit() {
	if initDone {
		return
	}

	defaultPath, err := DefaultLogPath()
	if err == nil {
		err = open(defaultPath)
	}
	if err != nil {
		root = slog.New(slog.NewTextHandler(io.Discard, nil))
		initDone = true
	}
}

// Get returns the root logger instance.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return root
}

// WithSession returns a logger with the session ID attached.
//
// Example:
//
//	log := logger.WithSession(id)
//	log.Info("session created", "name", name)
//	// Output: level=INFO msg="session created" sessionID=afe19c61-... name=repo+main
func WithSession(sessionID string) *slog.Logger {
	return Get().With("sessionID", sessionID)
}

// WithComponent returns a logger with the component name attached.
//
// Example:
//
//	log := logger.WithComponent("registry")
//	log.Debug("loaded", "count", n)
//	// Output: level=DEBUG msg=loaded component=registry count=3
func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}

// Path returns the active log file path, or "" when logging is discarded.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	root = nil
	initDone = false
}

// Reset resets the logger state, allowing reinitialization.
// This is primarily for testing purposes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	logPath = ""
	root = nil
	levelVar = new(slog.LevelVar)
}
