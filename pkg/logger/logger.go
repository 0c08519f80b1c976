// Package logger owns the process-wide zap sugared logger.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

// IsTest switches the logger to a stdout development config.
var IsTest bool

func initLogger() {
	var (
		zapLogger *zap.Logger
		err       error
		level     zapcore.Level
	)
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		level = zapcore.InfoLevel
	}

	switch {
	case IsTest:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stdout"}
		zapLogger, err = cfg.Build()
	case os.Getenv("ENVIRONMENT") == "production":
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err = cfg.Build()
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err = cfg.Build()
	}
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	logger = zapLogger.Sugar()
}

// GetLogger returns the shared logger, building it on first use.
func GetLogger() *zap.SugaredLogger {
	once.Do(initLogger)
	return logger
}

// Close flushes buffered entries. Call it before the process exits.
func Close() error {
	if logger == nil || IsTest {
		return nil
	}
	if err := logger.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing logger: %v\n", err)
		return err
	}
	return nil
}

// MaskConnectionString hides the password of a postgres URL or key/value DSN.
func MaskConnectionString(dsn string) string {
	if dsn == "" {
		return ""
	}
	masked := dsn
	if idx := strings.Index(masked, "://"); idx != -1 {
		if at := strings.Index(masked[idx+3:], "@"); at != -1 {
			userInfo := masked[idx+3 : idx+3+at]
			if colon := strings.Index(userInfo, ":"); colon != -1 {
				masked = strings.Replace(masked, userInfo, userInfo[:colon]+":***", 1)
			}
		}
	}
	if kv := strings.Index(masked, "password="); kv != -1 {
		rest := masked[kv+len("password="):]
		if end := strings.Index(rest, " "); end == -1 {
			masked = masked[:kv+len("password=")] + "***"
		} else {
			masked = masked[:kv+len("password=")] + "***" + rest[end:]
		}
	}
	return masked
}
