package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the path to the background log file, relative to the working directory (project root when run via go run ./cmd/background).
const LogFilePath = "logs/background.txt"

// Logger stores log lines in memory and, unless memory-only, appends them to a file on disk.
// Errors are also echoed to stderr so a blank background is never silent.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
}

// New returns a Logger writing to LogFilePath and ensures the logs directory exists.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	return &Logger{lines: make([]string, 0), path: LogFilePath}
}

// NewMemory returns a Logger that keeps lines in memory only.
func NewMemory() *Logger {
	return &Logger{lines: make([]string, 0)}
}

// Log appends a line to the logger and to the log file on disk. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Infof logs a formatted line.
func (l *Logger) Infof(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted line prefixed with "ERROR: " and echoes it to stderr.
func (l *Logger) Errorf(format string, args ...any) {
	line := "ERROR: " + fmt.Sprintf(format, args...)
	l.Log(line)
	if l.path != "" {
		fmt.Fprintln(os.Stderr, line)
	}
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Errors returns the stored lines that were logged through Errorf.
func (l *Logger) Errors() []string {
	var out []string
	for _, line := range l.Lines() {
		if strings.Contains(line, "] ERROR: ") {
			out = append(out, line)
		}
	}
	return out
}
