package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines logger configuration
type Config struct {
	Environment string // "development", "testing", "production"
	Level       string // "debug", "info", "warn", "error"
	// File logging configuration (only used in production)
	Filename   string // Log file path
	MaxSize    int    // Maximum size in megabytes
	MaxBackups int    // Maximum number of old log files to retain
	MaxAge     int    // Maximum number of days to retain old log files
	Compress   bool   // Compress rotated files with gzip
}

// DefaultConfig returns default logger configuration based on environment
func DefaultConfig(env string) *Config {
	switch env {
	case "production", "prod":
		return &Config{
			Environment: "production",
			Level:       "info",
			Filename:    "logs/taskman.log",
			MaxSize:     100, // 100 MB
			MaxBackups:  5,
			MaxAge:      30, // 30 days
			Compress:    true,
		}
	case "testing", "test":
		return &Config{
			Environment: "testing",
			Level:       "debug",
		}
	default: // development
		return &Config{
			Environment: "development",
			Level:       "warn",
		}
	}
}

// New creates a logger for the given configuration. The logger is passed
// explicitly to the components that need it; there is no package-level
// global.
func New(cfg *Config) (*zap.Logger, error) {
	level := parseLogLevel(cfg.Level)

	if cfg.Environment == "production" {
		return newProductionLogger(cfg, level)
	}
	return newDevelopmentLogger(level)
}

// Nop returns a logger that discards everything. Useful in tests that do not
// assert on log output.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// newProductionLogger creates a JSON file logger with rotation
func newProductionLogger(cfg *Config, level zapcore.Level) (*zap.Logger, error) {
	writer := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), level)

	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", "taskman")),
	)
	return logger, nil
}

// newDevelopmentLogger creates a console logger
func newDevelopmentLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}

// parseLogLevel converts a level string into a zap level, defaulting to info
func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
