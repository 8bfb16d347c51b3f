// Package logger provides a convenience function to constructing a logger
// for use. This is required not just for applications but for testing.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation represents the settings for writing the log to a file that is
// rotated by size.
type Rotation struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New constructs a Sugared Logger that writes to stdout and
// provides human readable timestamps.
func New(service string) (*zap.SugaredLogger, error) {
	return build(service, nil)
}

// NewWithRotation constructs a Sugared Logger that writes to stdout and to
// a rotated log file.
func NewWithRotation(service string, rotation Rotation) (*zap.SugaredLogger, error) {
	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   rotation.Filename,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	})

	return build(service, file)
}

// =============================================================================

func build(service string, file zapcore.WriteSyncer) (*zap.SugaredLogger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	level := zap.NewAtomicLevelAt(zap.InfoLevel)

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	if file != nil {
		core = zapcore.NewTee(core, zapcore.NewCore(encoder, file, level))
	}

	log := zap.New(core, zap.AddCaller(), zap.Fields(zap.String("service", service)))

	return log.Sugar(), nil
}
