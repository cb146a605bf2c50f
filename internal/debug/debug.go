// Package debug provides debug logging infrastructure for reviewdesk.
// Logging is only enabled when --debug flag is passed at startup.
// Logs are written to ~/.reviewdesk/debug.log, truncated on each launch.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".reviewdesk"
)

// Category scopes structured events to a subsystem.
type Category string

const (
	CatConfig Category = "config"
	CatStore  Category = "store"
	CatTheme  Category = "theme"
	CatEditor Category = "editor"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  zerolog.Logger
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Init initializes the debug logging system.
// If enable is false, all logging operations become no-ops.
// If enable is true, the log file is created/truncated at ~/.reviewdesk/debug.log.
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	if !enable {
		logger = zerolog.Nop()
		return nil
	}

	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	// Open log file, truncating if it exists
	//nolint:gosec // G304: Log path is computed from user home, not user input
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = newLogger(f)
	logger.Info().Msgf("=== reviewdesk debug log started at %s ===", time.Now().Format(time.RFC3339))

	return nil
}

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.NoColor = true
	console.TimeFormat = "2006/01/02 15:04:05.000000"
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Close closes the debug log file if open.
// Safe to call even if logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = zerolog.Nop()
}

// Log writes a debug message if debug logging is enabled.
// Arguments are handled in the manner of fmt.Print.
func Log(v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled {
		return
	}
	logger.Debug().Msg(fmt.Sprint(v...))
}

// Logf writes a formatted debug message if debug logging is enabled.
// Arguments are handled in the manner of fmt.Printf.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled {
		return
	}
	logger.Debug().Msgf(format, v...)
}

// Event writes a structured entry tagged with cat. Fields are written in
// key order. A non-nil err is attached and raises the level to warn.
func Event(cat Category, msg string, err error, fields map[string]any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled {
		return
	}
	ev := logger.Debug()
	if err != nil {
		ev = logger.Warn().Err(err)
	}
	ev.Str("category", string(cat)).Fields(fields).Msg(msg)
}

// Enabled returns whether debug logging is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// defaultGetLogPath returns the path to the debug log file.
func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path to the debug log file.
// Exported for use by other packages that need to know where logs are.
func GetLogPath() (string, error) {
	return getLogPath()
}
