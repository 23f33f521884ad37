package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the directory for crash logs relative to the data directory.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep.
	MaxCrashLogs = 10

	crashTimeLayout = "20060102_150405"
)

// CrashContext stores what the CLI was doing when a panic happened.
type CrashContext struct {
	mu        sync.RWMutex
	fs        afero.Fs
	basePath  string
	version   string
	command   string
	lastInput string
	dataFile  string
}

var globalContext = newCrashContext()

func newCrashContext() *CrashContext {
	return &CrashContext{fs: afero.NewOsFs()}
}

// SetBasePath sets the directory under which crash logs are kept.
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the command line being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetLastInput records the last form values submitted by the operator.
func SetLastInput(input string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastInput = truncateForLog(strings.TrimSpace(input), 500)
}

// SetDataFile records the activity document in use.
func SetDataFile(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.dataFile = path
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog is one crash report as written to disk.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	DataFile   string    `json:"data_file,omitempty"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	LastInput  string    `json:"last_input,omitempty"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// HandlePanic recovers from a panic, records a crash log and exits with
// status 1. Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		log := createCrashLog(r)
		path, err := writeCrashLog(log)
		reportCrash(os.Stderr, r, path, err)
		os.Exit(1)
	}
}

func reportCrash(w io.Writer, panicValue any, path string, writeErr error) {
	if writeErr != nil {
		_, _ = fmt.Fprintf(w, "\n[CRASH] Failed to write crash log: %v\n", writeErr)
		_, _ = fmt.Fprintf(w, "[CRASH] Panic: %v\n%s\n", panicValue, debug.Stack())
		return
	}
	_, _ = fmt.Fprintf(w, "\nsitelog stopped unexpectedly.\n")
	_, _ = fmt.Fprintf(w, "A crash log has been saved to:\n  %s\n", path)
	_, _ = fmt.Fprintf(w, "Run 'sitelog crashes --latest' to view it.\n\n")
}

func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		Command:    globalContext.command,
		DataFile:   globalContext.dataFile,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		LastInput:  globalContext.lastInput,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog stores log as JSON and returns its path.
func writeCrashLog(log CrashLog) (string, error) {
	fs := crashFs()
	dir := getCrashLogDir()

	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	// Make room first so the new log always survives.
	if err := cleanOldCrashLogs(fs, dir, MaxCrashLogs-1); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode crash log: %w", err)
	}
	path := getCrashLogPath(log.Timestamp)
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func crashFs() afero.Fs {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	return globalContext.fs
}

func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = ".sitelog"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func getCrashLogPath(t time.Time) string {
	filename := fmt.Sprintf("crash_%s.json", t.Format(crashTimeLayout))
	return filepath.Join(getCrashLogDir(), filename)
}

func isCrashLog(name string) bool {
	return strings.HasPrefix(name, "crash_") && strings.HasSuffix(name, ".json")
}

// cleanOldCrashLogs removes the oldest crash logs until at most keep remain.
// File names sort by timestamp.
func cleanOldCrashLogs(fs afero.Fs, dir string, keep int) error {
	names, err := crashLogNames(fs, dir)
	if err != nil || len(names) <= keep {
		return err
	}
	for _, name := range names[:len(names)-keep] {
		if err := fs.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", name, err)
		}
	}
	return nil
}

func crashLogNames(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && isCrashLog(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// ListCrashLogs returns the paths of the stored crash logs, oldest first.
func ListCrashLogs() ([]string, error) {
	dir := getCrashLogDir()
	names, err := crashLogNames(crashFs(), dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
	}
	return paths, nil
}

// ReadCrashLog decodes the crash log at path.
func ReadCrashLog(path string) (CrashLog, error) {
	var log CrashLog
	data, err := afero.ReadFile(crashFs(), path)
	if err != nil {
		return log, err
	}
	err = json.Unmarshal(data, &log)
	return log, err
}
