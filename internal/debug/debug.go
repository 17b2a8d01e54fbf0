package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GADGET_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	loaded  bool
)

// Init opens path for appending and routes all further Log calls to it.
// It overrides whatever GADGET_DEBUG selected.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	loaded = true
	return openLocked(path)
}

// openLocked does the actual open work. Caller must hold mu.
func openLocked(path string) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	return nil
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadEnvLocked()
	return logFile != nil
}

// loadEnvLocked opens the GADGET_DEBUG file on first use. Caller must hold mu.
func loadEnvLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		// a broken path just leaves logging disabled
		_ = openLocked(path)
	}
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadEnvLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}
