package logging

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger instance, set by InitializeLogger.
var Logger *zap.Logger

// InitializeLogger builds the application logger. Log level defaults
// to info, DEBUG_LVL=debug switches on debug logging.
func InitializeLogger() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	if os.Getenv("DEBUG_LVL") == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	Logger = logger
}
