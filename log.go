package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func _newLogger(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zap.InfoLevel
	config := zap.NewProductionEncoderConfig()
	if verbose {
		level = zap.DebugLevel
		config = zap.NewDevelopmentEncoderConfig()
	}
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}
