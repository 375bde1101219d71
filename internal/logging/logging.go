// Package logging provides the program logger, a printf-style facade over zerolog.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"audionorm/internal/domain/consts"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults used when LoggingConfig leaves them at zero.
const (
	defaultMaxSizeMB  = 1
	defaultMaxBackups = 3
)

// LoggingConfig configures SetupLogging.
type LoggingConfig struct {
	LogFilePath string
	MaxSizeMB   int
	MaxBackups  int
	Console     io.Writer
	Program     string
	DebugLevel  int
	NoColor     bool
}

// ProgramLogger writes human-readable lines to the console and JSON lines to the log file.
type ProgramLogger struct {
	zl     zerolog.Logger
	fileZL zerolog.Logger // Log file only
	cfg    LoggingConfig
	file   *lumberjack.Logger
	mu     sync.Mutex
}

// SetupLogging opens the log file (if any) and returns a ready logger.
func SetupLogging(cfg LoggingConfig) (*ProgramLogger, error) {
	pl := new(ProgramLogger)
	if err := pl.configure(cfg); err != nil {
		return nil, err
	}
	return pl, nil
}

// configure rebuilds the logger from cfg. pl is left untouched on error.
func (pl *ProgramLogger) configure(cfg LoggingConfig) error {
	var writers []io.Writer

	if cfg.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        cfg.Console,
			TimeFormat: time.DateTime,
			NoColor:    cfg.NoColor,
		})
	}

	var f *lumberjack.Logger
	fileZL := zerolog.Nop()
	if cfg.LogFilePath != "" {
		// lumberjack opens lazily; create the file now so a bad path fails here
		touch, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.PermsLogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.LogFilePath, err)
		}
		if err := touch.Close(); err != nil {
			return fmt.Errorf("failed to close log file %q: %w", cfg.LogFilePath, err)
		}

		if cfg.MaxSizeMB <= 0 {
			cfg.MaxSizeMB = defaultMaxSizeMB
		}
		if cfg.MaxBackups <= 0 {
			cfg.MaxBackups = defaultMaxBackups
		}
		f = &lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		writers = append(writers, f)
		fileZL = zerolog.New(f).With().Timestamp().Logger()
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if cfg.Program != "" {
		ctx = ctx.Str("program", cfg.Program)
	}
	pl.zl = ctx.Logger().Level(levelFor(cfg.DebugLevel))
	if cfg.Program != "" {
		fileZL = fileZL.With().Str("program", cfg.Program).Logger()
	}
	pl.fileZL = fileZL
	pl.cfg = cfg
	pl.file = f
	return nil
}

// SetLogFile switches logging to another file, closing the previous one.
func (pl *ProgramLogger) SetLogFile(path string) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if path == pl.cfg.LogFilePath {
		return nil
	}

	old := pl.file
	cfg := pl.cfg
	cfg.LogFilePath = path
	if err := pl.configure(cfg); err != nil {
		return err
	}
	if old != nil {
		return old.Close()
	}
	return nil
}

// New returns a console-only logger writing to w, mostly useful in tests.
func New(w io.Writer, debugLevel int) *ProgramLogger {
	pl, _ := SetupLogging(LoggingConfig{Console: w, DebugLevel: debugLevel, NoColor: true})
	return pl
}

// Discard returns a logger that drops everything.
func Discard() *ProgramLogger {
	return &ProgramLogger{zl: zerolog.Nop(), fileZL: zerolog.Nop()}
}

// SetDebugLevel changes the verbosity used by D.
func (pl *ProgramLogger) SetDebugLevel(l int) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.cfg.DebugLevel = l
	pl.zl = pl.zl.Level(levelFor(l))
}

// I logs an info line.
func (pl *ProgramLogger) I(format string, args ...any) {
	pl.zl.Info().Msgf(format, args...)
}

// S logs a success line.
func (pl *ProgramLogger) S(format string, args ...any) {
	pl.zl.Info().Bool("success", true).Msgf(format, args...)
}

// W logs a warning.
func (pl *ProgramLogger) W(format string, args ...any) {
	pl.zl.Warn().Msgf(format, args...)
}

// E logs an error.
func (pl *ProgramLogger) E(format string, args ...any) {
	pl.zl.Error().Msgf(format, args...)
}

// FileE logs an error to the log file only, for errors already shown on the terminal.
func (pl *ProgramLogger) FileE(format string, args ...any) {
	pl.fileZL.Error().Msgf(format, args...)
}

// D logs a debug line when l is within the configured debug level (1-5).
func (pl *ProgramLogger) D(l int, format string, args ...any) {
	pl.mu.Lock()
	lvl := pl.cfg.DebugLevel
	pl.mu.Unlock()
	if l > lvl {
		return
	}
	pl.zl.Debug().Int("level", l).Msgf(format, args...)
}

// Close closes the log file, if one was opened.
func (pl *ProgramLogger) Close() error {
	if pl.file == nil {
		return nil
	}
	return pl.file.Close()
}

func levelFor(debugLevel int) zerolog.Level {
	if debugLevel > 0 {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
