package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Logger struct {
	level  Level
	logger *log.Logger
}

// New logs to stderr so command output on stdout stays machine readable
func New(levelStr string) *Logger {
	return NewWithWriter(levelStr, os.Stderr)
}

func NewWithWriter(levelStr string, w io.Writer) *Logger {
	return &Logger{
		level:  parseLevel(levelStr),
		logger: log.New(w, "", 0),
	}
}

func parseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// SetLevel changes the minimum level, e.g. for --verbose
func (l *Logger) SetLevel(levelStr string) {
	l.level = parseLevel(levelStr)
}

func (l *Logger) log(level Level, prefix string, msg string) {
	if level >= l.level {
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		l.logger.Printf("[%s] %s %s", timestamp, prefix, msg)
	}
}

func (l *Logger) Debug(v ...interface{}) {
	l.log(DebugLevel, "[DEBUG]", sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.log(DebugLevel, "[DEBUG]", fmt.Sprintf(format, v...))
}

func (l *Logger) Info(v ...interface{}) {
	l.log(InfoLevel, "[INFO]", sprint(v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(InfoLevel, "[INFO]", fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(WarnLevel, "[WARN]", sprint(v...))
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log(WarnLevel, "[WARN]", fmt.Sprintf(format, v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.log(ErrorLevel, "[ERROR]", sprint(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log(ErrorLevel, "[FATAL]", sprint(v...))
	os.Exit(1)
}

// sprint joins arguments with spaces, so Error("failed:", err) reads naturally
func sprint(v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(v...), "\n")
}
