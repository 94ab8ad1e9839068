package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultLogFile is where logs go unless PROMPTKIT_LOG_FILE says otherwise.
	DefaultLogFile = ".promptkit/promptkit.log"

	envLogFile  = "PROMPTKIT_LOG_FILE"
	envJSONLogs = "PROMPTKIT_JSON_LOGS"
)

// Logger writes diagnostic lines to a rotating file, never to the
// terminal a prompt is drawing on.
type Logger struct {
	logger   *log.Logger
	closer   io.Closer
	jsonMode bool
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the process-wide logger, creating it on first use.
func GetLogger() *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   LogFilePath(),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = NewLogger(logFile, os.Getenv(envJSONLogs) == "1")
		globalLogger.closer = logFile
	})
	return globalLogger
}

// LogFilePath returns the file GetLogger writes to.
func LogFilePath() string {
	if filename := os.Getenv(envLogFile); filename != "" {
		return filename
	}
	return DefaultLogFile
}

// NewLogger creates a logger over w. jsonMode writes one JSON object per
// line instead of plain log lines.
func NewLogger(w io.Writer, jsonMode bool) *Logger {
	return &Logger{
		logger:   log.New(w, "", log.LstdFlags),
		jsonMode: jsonMode,
	}
}

// Close closes the log file, if the logger owns one.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Log logs a general message.
func (l *Logger) Log(message string) {
	if l.jsonMode {
		_ = json.NewEncoder(l.logger.Writer()).Encode(map[string]any{"level": "info", "msg": message})
		return
	}
	l.logger.Print(message)
}

// Logf logs a formatted general message.
func (l *Logger) Logf(format string, v ...interface{}) {
	if l.jsonMode {
		l.Log(fmt.Sprintf(format, v...))
		return
	}
	l.logger.Printf(format, v...)
}

func (l *Logger) LogError(err error) {
	if l.jsonMode {
		_ = json.NewEncoder(l.logger.Writer()).Encode(map[string]any{"level": "error", "error": err.Error()})
		return
	}
	l.logger.Printf("Error: %s", err)
}
