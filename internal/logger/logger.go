package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance.
	Log = zerolog.Nop()

	fileWriter *lumberjack.Logger
)

// Options controls where log events are written.
type Options struct {
	// Verbose enables debug level and the stderr console writer.
	Verbose bool
	// Console receives console output. Defaults to os.Stderr.
	Console io.Writer
	// FilePath enables rotating file output when non-empty.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// Init configures the global logger. It is safe to call more than once;
// a previously opened log file is closed first.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	var writers []io.Writer
	if opts.Verbose {
		console := opts.Console
		if console == nil {
			console = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		})
	}

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0700); err != nil {
			return fmt.Errorf("logger.Init: %w", err)
		}
		fileWriter = &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			LocalTime:  true,
		}
		writers = append(writers, fileWriter)
	}

	if len(writers) == 0 {
		Log = zerolog.Nop()
		return nil
	}

	Log = zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

// Close flushes and closes the log file, if any, and silences the logger.
func Close() error {
	Log = zerolog.Nop()
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}

// FilePath returns the active log file path, or "" when file logging is off.
func FilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug starts a debug level event.
func Debug() *zerolog.Event { return Log.Debug() }

// Info starts an info level event.
func Info() *zerolog.Event { return Log.Info() }

// Warn starts a warn level event.
func Warn() *zerolog.Event { return Log.Warn() }

// Error starts an error level event.
func Error() *zerolog.Event { return Log.Error() }
