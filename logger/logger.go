// Package logger exposes a lazily initialised structured logger shared by
// the command layer. Diagnostic logs go to stderr so they never mix with
// the progress output on stdout.
package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once       sync.Once
	logger     *zap.SugaredLogger
	level      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	syncLogger = func() error { return nil }
)

// Logger returns the shared structured logger, building it on first use.
func Logger() *zap.SugaredLogger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = level
		cfg.OutputPaths = []string{"stderr"}
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.MessageKey = "msg"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		base, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		logger = base.Sugar()
		syncLogger = base.Sync
	})

	return logger
}

// SetDebug lowers the level so per-line detector diagnostics are emitted.
func SetDebug() {
	level.SetLevel(zapcore.DebugLevel)
}

// Sync flushes any buffered log entries. Closed stderr (common when the
// process is wrapped) is not treated as an error.
func Sync() error {
	if err := syncLogger(); err != nil {
		if strings.Contains(err.Error(), "bad file descriptor") {
			return nil
		}
		return err
	}
	return nil
}
