// Package logging provides the component logger used across snapvault.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,
}

// Entry is a single log record.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Component string
	Message   string
	Err       error
	Fields    map[string]interface{}
}

// Formatter renders an entry for output.
type Formatter interface {
	Format(entry *Entry) string
}

// TextFormatter renders entries as single human-readable lines.
type TextFormatter struct{}

func (TextFormatter) Format(entry *Entry) string {
	msg := fmt.Sprintf("[%s] %s [%s] %s",
		entry.Timestamp.Format("2006-01-02 15:04:05.000"),
		entry.Level, entry.Component, entry.Message)
	if entry.Err != nil {
		msg += fmt.Sprintf(" | error=%v", entry.Err)
	}
	for k, v := range entry.Fields {
		msg += fmt.Sprintf(" %s=%v", k, v)
	}
	return msg + "\n"
}

// Logger writes leveled, component-tagged messages to one or more
// outputs.
type Logger struct {
	component string
	minLevel  Level
	outputs   []io.Writer
	formatter Formatter
	mu        sync.Mutex
}

// New creates a logger for a component, writing to stderr at Info.
func New(component string) *Logger {
	return &Logger{
		component: component,
		minLevel:  LevelInfo,
		outputs:   []io.Writer{os.Stderr},
		formatter: TextFormatter{},
	}
}

// SetMinLevel sets the minimum level to emit.
func (l *Logger) SetMinLevel(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
	return l
}

// AddOutput adds another output writer.
func (l *Logger) AddOutput(w io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs = append(l.outputs, w)
	return l
}

func (l *Logger) log(level Level, message string, err error, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	formatted := l.formatter.Format(&Entry{
		Timestamp: time.Now(),
		Level:     level,
		Component: l.component,
		Message:   message,
		Err:       err,
		Fields:    fields,
	})
	for _, out := range l.outputs {
		out.Write([]byte(formatted))
	}
}

func (l *Logger) Debug(message string) {
	l.log(LevelDebug, message, nil, nil)
}

func (l *Logger) Info(message string) {
	l.log(LevelInfo, message, nil, nil)
}

// InfoWithFields logs an info message with key/value context.
func (l *Logger) InfoWithFields(message string, fields map[string]interface{}) {
	l.log(LevelInfo, message, nil, fields)
}

func (l *Logger) Warn(message string) {
	l.log(LevelWarn, message, nil, nil)
}

func (l *Logger) WarnWithFields(message string, fields map[string]interface{}) {
	l.log(LevelWarn, message, nil, fields)
}

func (l *Logger) Error(message string, err error) {
	l.log(LevelError, message, err, nil)
}

func (l *Logger) ErrorWithFields(message string, err error, fields map[string]interface{}) {
	l.log(LevelError, message, err, fields)
}

// Fatal logs at fatal level. Exiting is the caller's decision.
func (l *Logger) Fatal(message string, err error) {
	l.log(LevelFatal, message, err, nil)
}
