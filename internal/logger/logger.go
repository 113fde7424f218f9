package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "quiet"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = newLogger(os.Getenv(logEnvKey))
	if err != nil || logger == nil {
		log.Fatal("logger init", err)
	}
}

// newLogger builds a logger for the given environment. The interactive
// prompt shares the terminal with stderr, so the default only reports errors.
func newLogger(env string) (*zap.Logger, error) {
	if env == "" {
		env = defaultLogEnv
	}

	switch env {
	case "dev":
		return zap.NewDevelopment()
	case "prod":
		return zap.NewProduction()
	case "quiet":
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		cfg.Sampling = nil
		return cfg.Build()
	case "none":
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// Configure rebuilds the package logger for env, e.g. after a .env file was loaded.
func Configure(env string) error {
	l, err := newLogger(env)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Replace swaps the package logger, returning a function that restores the previous one.
func Replace(l *zap.Logger) func() {
	prev := logger
	logger = l
	return func() {
		logger = prev
	}
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Sync() {
	_ = logger.Sync()
}
