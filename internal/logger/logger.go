package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/wolfeidau/electron-presets/plugin"
)

func Setup(dev bool) zerolog.Logger {
	return setup(os.Stderr, dev)
}

func setup(out io.Writer, dev bool) zerolog.Logger {
	var logger zerolog.Logger
	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(out).Level(level).With().Timestamp().Caller().Logger()

	if dev {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, FormatTimestamp: func(i any) string {
			return time.Now().Format(time.RFC3339)
		}}).Level(level).With().Stack().Logger()
	}

	return logger
}

var _ plugin.Logger = (*PluginLogger)(nil)

// PluginLogger forwards preset warnings and errors to zerolog, tagged with
// the process type being configured.
type PluginLogger struct {
	logger zerolog.Logger
}

func NewPluginLogger(logger zerolog.Logger, process string) *PluginLogger {
	return &PluginLogger{logger: logger.With().Str("process", process).Logger()}
}

func (p *PluginLogger) Warn(msg string) {
	p.logger.Warn().Msg(msg)
}

func (p *PluginLogger) Error(msg string) {
	p.logger.Error().Msg(msg)
}
