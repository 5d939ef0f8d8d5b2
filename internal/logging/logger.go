package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger wraps the standard library logger with structured key-value
// methods and an optional debug level.
type Logger struct {
	logger *log.Logger
	debug  bool
}

// New creates a Logger. level is compared case-insensitively; anything
// other than "debug" keeps debug output off.
func New(level string) *Logger {
	return &Logger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		debug:  strings.EqualFold(level, "debug"),
	}
}

// Info logs an informational message with key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log("INFO", msg, keysAndValues...)
}

// Error logs an error message with key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log("ERROR", msg, keysAndValues...)
}

// Debug logs a debug message; dropped unless the logger was created
// with the debug level.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	if !l.debug {
		return
	}
	l.log("DEBUG", msg, keysAndValues...)
}

// log formats and outputs a message with key-value pairs, given as
// "key1", value1, "key2", value2, ...
func (l *Logger) log(level, msg string, keysAndValues ...interface{}) {
	output := fmt.Sprintf("[%s] %s", level, msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		output += fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.logger.Println(output)
}
