// Package log configures the zap logger used by the stub-generator CLI.
// Library packages never log; they report through diagnostics and errors.
package log

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config serializes log related config.
type Config struct {
	// Level is one of trace, debug, info, warn, error.
	Level string
	// File enables an additional rotating log file when Filename is set.
	File FileLogConfig
}

// FileLogConfig serializes file log related config.
type FileLogConfig struct {
	Filename string
	// MaxSize in megabytes before rotation.
	MaxSize int
	// MaxDays to retain old log files.
	MaxDays int
	// MaxBackups is the number of rotated files kept.
	MaxBackups int
}

// DefaultConfig logs info and above to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level: "info",
		File: FileLogConfig{
			MaxSize:    64,
			MaxDays:    7,
			MaxBackups: 3,
		},
	}
}

// ParseLevel parses a level name. "trace" is accepted as debug.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.EqualFold(name, "trace") {
		name = "debug"
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return level, errors.Wrapf(err, "invalid log level %q", name)
	}

	return level, nil
}

// InitLogger builds a console logger on stderr, teeing into a rotating file
// when configured.
func InitLogger(cfg *Config, opts ...zap.Option) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}

	if cfg.File.Filename != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(initFileLog(&cfg.File)),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func initFileLog(cfg *FileLogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
}
