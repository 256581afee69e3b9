package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Channel loggers. They are no-ops until InitLoggers runs, so packages and
// tests can log without any setup.
var (
	ErrorLogger    = zap.NewNop()
	AuditLogger    = zap.NewNop()
	RequestLogger  = zap.NewNop()
	SecurityLogger = zap.NewNop()
	SystemLogger   = zap.NewNop()
)

var closers []func() error

func newLogger(ws zapcore.WriteSyncer, level zapcore.Level, channel string) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		ws,
		level,
	)
	return zap.New(core).With(zap.String("channel", channel))
}

func fileSyncer(dir, name string) (zapcore.WriteSyncer, error) {
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	closers = append(closers, file.Close)
	return zapcore.AddSync(file), nil
}

// InitLoggers builds every channel. With an empty dir all channels write
// JSON lines to stdout; otherwise each channel gets its own file in dir.
func InitLoggers(dir string) error {
	channels := []struct {
		target *(*zap.Logger)
		name   string
		level  zapcore.Level
	}{
		{&ErrorLogger, "errors", zapcore.ErrorLevel},
		{&AuditLogger, "audit", zapcore.InfoLevel},
		{&RequestLogger, "request", zapcore.InfoLevel},
		{&SecurityLogger, "security", zapcore.WarnLevel},
		{&SystemLogger, "system", zapcore.InfoLevel},
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}

	stdout := zapcore.Lock(os.Stdout)
	for _, ch := range channels {
		ws := stdout
		if dir != "" {
			var err error
			ws, err = fileSyncer(dir, ch.name+".log")
			if err != nil {
				return fmt.Errorf("cannot create %s logger: %w", ch.name, err)
			}
		}
		*ch.target = newLogger(ws, ch.level, ch.name)
	}
	return nil
}

func SyncLoggers() {
	_ = ErrorLogger.Sync()
	_ = AuditLogger.Sync()
	_ = RequestLogger.Sync()
	_ = SecurityLogger.Sync()
	_ = SystemLogger.Sync()
	for _, c := range closers {
		_ = c()
	}
	closers = nil
}
