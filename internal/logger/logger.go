package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/doarbem/donation-api/internal/config"
)

// Init builds the process logger and installs it as the zap global.
// Production gets JSON logs, everything else the console encoder. When a
// filename is configured the logs also go to a size-rotated file.
func Init(conf *config.LogConfig) (*zap.Logger, error) {
	production := conf != nil && conf.Environment == "production"

	var enc zapcore.Encoder
	level := zapcore.DebugLevel
	if production {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
		level = zapcore.InfoLevel
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), level),
	}

	if conf != nil && conf.Filename != "" {
		rotator := &lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotator), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zap.ReplaceGlobals(l)

	return l, nil
}
