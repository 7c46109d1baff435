package logger

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.SugaredLogger

func init() {
	// Usable before Init runs (tests, early startup).
	l, _ := build("info", "")
	log = l.Sugar()
}

// Init replaces the default logger with one built from config. When
// file is non-empty, output goes to a size-rotated file as well as
// stderr.
func Init(level, file string) error {
	l, err := build(level, file)
	if err != nil {
		return err
	}
	log = l.Sugar()
	return nil
}

func build(level, file string) (*zap.Logger, error) {
	var lvl zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05"))
	}
	encoder := zapcore.NewJSONEncoder(encCfg)

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stderr)}
	if file != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), lvl)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = log.Sync()
}

func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }

func Fatalf(format string, args ...any) {
	log.Fatalf(format, args...)
}

// Errorw logs an error with structured key-value context.
func Errorw(msg string, keysAndValues ...any) { log.Errorw(msg, keysAndValues...) }
