package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger writes to stdout and to a rotated file under LogPath. Debug
// switches to the console encoder and forces the debug level; otherwise
// LogLevel applies, falling back to info when it does not parse.
func InitLogger(app AppConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if app.LogLevel != "" {
		if parsed, err := zapcore.ParseLevel(app.LogLevel); err == nil {
			level = parsed
		}
	}
	if app.Debug {
		level = zapcore.DebugLevel
	}

	encoder := newEncoder(app.Debug)
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	if app.LogPath != "" {
		if err := os.MkdirAll(app.LogPath, 0o755); err != nil {
			return nil, err
		}
		name := app.Name
		if name == "" {
			name = "movie-catalog"
		}
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(app.LogPath, name+".log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotated), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).With(zap.String("app", app.Name)), nil
}

func newEncoder(debug bool) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	if debug {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	if debug {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}
