package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	Level          string                 `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
	TimeField      string                 `mapstructure:"time_field"`
	TimeFormat     string                 `mapstructure:"time_format"`
	ServiceName    string                 `mapstructure:"service_name"`
	ServiceVersion string                 `mapstructure:"service_version"`
	Env            string                 `mapstructure:"env" validate:"omitempty,oneof=dev staging prod"`
	WithCaller     bool                   `mapstructure:"with_caller"`
	DebugLogPath   string                 `mapstructure:"debug_log_path"`
	Fields         map[string]interface{} `mapstructure:"fields"`
}

// New builds the process logger from config. Production-like environments get
// JSON on stdout; dev gets a console writer, and at debug level the stream is
// additionally copied to a rotating file so full history survives restarts.
func New(logg *LoggerConfig) (logger zerolog.Logger, err error) {
	logg.setDefaults()

	v := validator.New()
	if err = v.Struct(logg); err != nil {
		return logger, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = logg.TimeField
	zerolog.TimeFieldFormat = logg.TimeFormat

	var writer io.Writer
	switch logg.Env {
	case "prod", "staging":
		writer = os.Stdout
	case "dev":
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: logg.TimeFormat,
		}
		if logg.Level == "debug" || logg.Level == "trace" {
			fileWriter := &lumberjack.Logger{
				Filename:   logg.DebugLogPath,
				MaxSize:    20, // megabytes
				MaxBackups: 3,
				MaxAge:     14, // days
			}
			writer = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
		} else {
			writer = consoleWriter
		}
	}

	logger = zerolog.New(writer).
		With().
		Timestamp().
		Str("service", logg.ServiceName).
		Str("version", logg.ServiceVersion).
		Str("env", logg.Env).
		Logger()

	if logg.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	if len(logg.Fields) > 0 {
		logger = logger.With().Fields(logg.Fields).Logger()
	}

	level, err := zerolog.ParseLevel(logg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

func (c *LoggerConfig) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = zerolog.TimeFormatUnixMs
	}
	if c.DebugLogPath == "" {
		c.DebugLogPath = "logs/debug.log"
	}
	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if c.ServiceName == "" {
		c.ServiceName = "team-roster-service"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.0.1"
	}
	if c.Fields == nil {
		c.Fields = make(map[string]interface{})
	}
}
