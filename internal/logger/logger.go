package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	instance *Logger
	initMu   sync.Mutex
)

// Logger provides TUI-safe logging to a file.
type Logger struct {
	log     *logrus.Logger
	logFile *os.File
	mu      sync.Mutex
}

// Init initializes the global logger, writing to dir/spellfix.log.
// Once it has succeeded later calls do nothing; a failed attempt may be
// retried.
func Init(dir string) error {
	initMu.Lock()
	defer initMu.Unlock()
	if instance != nil {
		return nil
	}
	l, err := newLogger(dir)
	if err != nil {
		return err
	}
	instance = l
	return nil
}

func newLogger(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(dir, "spellfix.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(logFile)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)

	return &Logger{log: l, logFile: logFile}, nil
}

// SetLevel changes the minimum level ("debug", "info", "error", ...).
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.log.SetLevel(lvl)
	}
	return nil
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if instance != nil {
		instance.logf(logrus.InfoLevel, format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if instance != nil {
		instance.logf(logrus.ErrorLevel, format, args...)
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if instance != nil {
		instance.logf(logrus.DebugLevel, format, args...)
	}
}

// Event logs a state-machine event for a buffer at debug level.
func Event(buffer, event string, fields map[string]interface{}) {
	if instance == nil {
		return
	}
	instance.mu.Lock()
	defer instance.mu.Unlock()
	instance.log.WithFields(logrus.Fields(fields)).
		WithField("buffer", buffer).
		Debug(event)
}

func (l *Logger) logf(level logrus.Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Logf(level, format, args...)
}

// Close closes the log file
func Close() error {
	if instance != nil && instance.logFile != nil {
		return instance.logFile.Close()
	}
	return nil
}

// SetOutput allows changing the output destination (useful for testing)
func SetOutput(w io.Writer) {
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.log.SetOutput(w)
	}
}
