package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds JSON production logger, or human readable console logger in development mode.
func NewLogger(level zapcore.Level, development bool) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(level)
	if development {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {}
		logCfg.DisableCaller = true
		logCfg.DisableStacktrace = true
		logCfg.Level = zap.NewAtomicLevelAt(level)
	}
	return logCfg.Build()
}
