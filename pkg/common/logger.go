package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Log(message string)
}

type fileLogger struct {
	mutex      sync.Mutex
	path       string
	fileWriter *bufio.Writer
	console    io.Writer
}

// NewFileLogger logs to the file specified by `path`. If the file is unavailable, writes to the console.
// Every message is prefixed with a timestamp and terminated with a newline.
func NewFileLogger(path string) Logger {
	return &fileLogger{
		path:    path,
		console: os.Stdout,
	}
}

func (f *fileLogger) Log(message string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	line := formatLogLine(time.Now(), message)
	if !f.fileWriterReady() {
		f.logMessageToConsole(line)
		return
	}
	_, err := f.fileWriter.WriteString(line)
	if err != nil {
		f.logErrorToConsole(err.Error())
		f.logMessageToConsole(line)
		return
	}
	err = f.fileWriter.Flush()
	if err != nil {
		f.logErrorToConsole(err.Error())
	}
}

func formatLogLine(t time.Time, message string) string {
	return fmt.Sprintf("%s %s\n", t.Format(time.RFC3339), strings.TrimRight(message, "\n"))
}

func (f *fileLogger) logErrorToConsole(message string) {
	_, _ = fmt.Fprintf(f.console, "Error: %s. Logging switched to console.\n", message)
}

func (f *fileLogger) logMessageToConsole(message string) {
	_, _ = fmt.Fprint(f.console, message)
}

func (f *fileLogger) fileWriterReady() bool {
	if f.fileWriter != nil {
		return true
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.logErrorToConsole(err.Error())
		return false
	}
	f.fileWriter = bufio.NewWriter(file)
	return true
}
