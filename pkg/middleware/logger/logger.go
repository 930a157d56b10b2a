package logger

import (
	"context"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path       string
	LogLevel   string
	MaxSizeMB  int
	MaxBackups int
	ServiceEnv ServiceEnv
}

var (
	raw   = zap.NewNop()
	sugar = otelzap.New(raw).Sugar()
)

func Init(conf *LogConfig) {
	level, err := zapcore.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encConf)

	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if conf.Path != "" {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    max(conf.MaxSizeMB, 100),
			MaxBackups: max(conf.MaxBackups, 5),
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), level)
	raw = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).With(
		zap.String("platform", conf.ServiceEnv.Platform),
		zap.String("service", conf.ServiceEnv.Service),
		zap.String("env", conf.ServiceEnv.Env),
	)
	sugar = otelzap.New(raw, otelzap.WithMinLevel(level)).Sugar()
}

func Close() {
	_ = raw.Sync()
}

// L exposes the underlying zap logger for libraries that take one.
func L() *zap.Logger {
	return raw
}

func Debugf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctx).Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctx).Fatalf(format, args...)
}
