package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Config selects where log lines go and how chatty they are.
type Config struct {
	Level string
	File  string
}

// New builds the process logger. The TUI owns the terminal while running, so
// stderr is only used when it has been redirected away from a tty; otherwise
// lines go to the configured file, or nowhere.
//
// New always returns a usable logger. A non-nil error means the file sink
// could not be opened and was skipped.
func New(cfg Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if cfg.Level != "" {
		if lvl, err := logrus.ParseLevel(cfg.Level); err == nil {
			level = lvl
		}
	}
	log.SetLevel(level)

	var writers []io.Writer
	var fileErr error
	if cfg.File != "" {
		if w, err := openLogFile(cfg.File); err != nil {
			fileErr = err
		} else {
			writers = append(writers, w)
		}
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}
	return log, fileErr
}

func openLogFile(path string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Component tags every line from one part of the app, so a shared file can
// be filtered per subsystem.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}

// Discard returns a logger entry that drops everything. Tests pass it where
// a component logger is required.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log.WithField("component", "test")
}
