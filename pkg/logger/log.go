package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the application logger: console encoding to stdout, and
// optionally to a file when LOG_FILE is set.
func NewLogger() *zap.Logger {
	outputs := []string{"stdout"}
	if path := os.Getenv("LOG_FILE"); path != "" {
		outputs = append(outputs, path)
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}
