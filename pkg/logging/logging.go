package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// verbosityLevels maps the count of -v flags to a global level
var verbosityLevels = []zerolog.Level{
	zerolog.WarnLevel,  // default: skipped files and failed scans only
	zerolog.InfoLevel,  // -v: one line per scan
	zerolog.DebugLevel, // -vv: collection and matching details
	zerolog.TraceLevel, // -vvv: pruned directories
}

var (
	fileMu sync.Mutex
	// logFile is the currently open log file, replaced on every SetupLogger
	logFile *os.File
)

// LevelFor returns the level selected by a verbosity count
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(verbosityLevels) {
		return verbosityLevels[len(verbosityLevels)-1]
	}
	return verbosityLevels[verbosity]
}

// SetupLogger configures the global logger based on verbosity level.
// Console output goes to stderr; JSON lines are appended to the log file.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	// Human readable console output, uncolored when NO_COLOR is set
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
	writers := []io.Writer{consoleWriter}

	// Log file under the XDG state home, console only if it cannot be opened
	path := getLogFilePath()
	file, err := reopenLogFile(path)
	if err == nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	// Caller information from -vv up
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the path to the log file. XDG_STATE_HOME wins when
// set at call time, otherwise the xdg default state dir is used.
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return "skillguard.log"
	}
	return filepath.Join(stateHome, "skillguard", "skillguard.log")
}

// reopenLogFile opens logPath for appending, creating parent directories, and
// closes the file opened by a previous setup
func reopenLogFile(logPath string) (*os.File, error) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = file
	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
