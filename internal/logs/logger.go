package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	Logger  = log.New(io.Discard, "[notecli] ", log.LstdFlags|log.Lshortfile)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at <logDir>/debug.log.
// Notebooks live in the working directory, so nothing is logged until a
// directory outside of it is given.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, "[notecli] ", log.LstdFlags|log.Lshortfile)

	Logger.Printf("Logger initialized: %s", logPath)

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger.SetOutput(io.Discard)
		return err
	}
	return nil
}
