package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log глобальный структурированный логгер. До вызова Initialize работает как no-op.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize настраивает глобальный логгер с заданным уровнем
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync сбрасывает буферы логгера
func Sync() {
	_ = Log.Sync()
}
