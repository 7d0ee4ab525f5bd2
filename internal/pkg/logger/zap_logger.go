package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// ZapLogger is the application logger: structured JSON, optional file
// output, optional New Relic log forwarding
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
	nrApp *newrelic.Application
	file  *os.File
}

// newRelicCore forwards log entries to New Relic
type newRelicCore struct {
	level zapcore.Level
	nrApp *newrelic.Application
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(encoder)
	}

	logData := newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: encoder.Fields,
	}
	if logData.Attributes == nil {
		logData.Attributes = make(map[string]any)
	}
	logData.Attributes["caller"] = entry.Caller.TrimmedPath()

	c.nrApp.RecordLog(logData)
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// InitZapLoggerFromConfig builds the logger from application configuration
func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(configs.Logger.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	}

	var file *os.File
	if configs.Logger.Type == "file" && configs.Logger.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(configs.Logger.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(configs.Logger.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(f), level))
	}

	if nrApp != nil && configs.NewRelic.ForwardLogs {
		cores = append(cores, &newRelicCore{level: level, nrApp: nrApp})
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		Logger: zl,
		sugar:  zl.Sugar(),
		nrApp:  nrApp,
		file:   file,
	}, nil
}

// Sugar returns the sugared logger for printf-style call sites
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes buffers and closes the log file if one is open
func (l *ZapLogger) Close() {
	_ = l.Logger.Sync()
	if l.file != nil {
		_ = l.file.Close()
	}
}
