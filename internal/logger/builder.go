package logger

import (
	"io"
	"os"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config        LoggerConfig
	factory       *WriterFactory
	consoleOutput io.Writer
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:        DefaultLoggerConfig(),
		factory:       NewWriterFactory(),
		consoleOutput: os.Stderr,
	}
}

// WithConfig applies a file-level log configuration. Unknown levels fall back to info.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	level, _ := ParseLevel(cfg.LogLevel)
	lb.config.Level = level
	lb.config.Format = ParseFormat(cfg.LogFormat)
	lb.config.EnableFile = cfg.LogFile != ""
	lb.config.FilePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		lb.config.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		lb.config.MaxBackups = cfg.MaxLogBackups
	}
	return lb
}

// WithLevel overrides the minimum level.
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.config.Level = level
	return lb
}

// WithFormat overrides the output format.
func (lb *LoggerBuilder) WithFormat(format LogFormat) *LoggerBuilder {
	lb.config.Format = format
	return lb
}

// WithFile enables rotating file output at path.
func (lb *LoggerBuilder) WithFile(path string) *LoggerBuilder {
	lb.config.EnableFile = path != ""
	lb.config.FilePath = path
	return lb
}

// WithConsole toggles console output.
func (lb *LoggerBuilder) WithConsole(enabled bool) *LoggerBuilder {
	lb.config.EnableConsole = enabled
	return lb
}

// WithConsoleOutput redirects console output, stderr by default. Results go to
// stdout so logs must stay off it.
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	if w != nil {
		lb.consoleOutput = w
	}
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return nil, err
	}

	var writers []io.Writer
	var closers []io.Closer

	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.consoleOutput, lb.config.Format))
	}

	if lb.config.EnableFile {
		fileWriter, closer, err := lb.factory.CreateFileWriter(lb.config)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to create log file writer")
		}
		writers = append(writers, fileWriter)
		closers = append(closers, closer)
	}

	if len(writers) == 0 {
		return nil, errorwrapper.NewError("no output writers configured")
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	return &Logger{
		zerolog: zl,
		config:  lb.config,
		closers: closers,
	}, nil
}

func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return errorwrapper.NewValidationError("file_path", lb.config.FilePath, "file path required when file logging enabled")
	}
	if lb.config.MaxSizeMB <= 0 {
		return errorwrapper.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}
	return nil
}
