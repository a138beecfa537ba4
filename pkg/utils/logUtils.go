package utils

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerConfig struct {
	LogToFile  bool   `json:"log_to_file" yaml:"log_to_file"`
	Filename   string `json:"filename" yaml:"filename"`
	MaxSize    int    `json:"max_size" yaml:"max_size"`
	MaxAge     int    `json:"max_age" yaml:"max_age"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	LogLevel   string `json:"log_level" yaml:"log_level"`
	IncludeSrc bool   `json:"include_src" yaml:"include_src"`
}

func InitLogger(
	logLevel string,
	includeSrc bool,
	logToFile bool,
	logFilename string,
	logFileMaxSize int,
	logFileMaxAge int,
	logFileMaxBackups int,
) {
	opts := &slog.HandlerOptions{
		Level:     logLevelFromString(logLevel),
		AddSource: includeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.Replace(source.Function, "github.com/Trust-Tai/bioptrics-survey-backend", "", -1)
				}
			}
			return a
		},
	}

	var logger *slog.Logger
	if logToFile && logFilename != "" {
		logTarget := &lumberjack.Logger{
			Filename:   logFilename,
			MaxSize:    logFileMaxSize, // megabytes
			MaxAge:     logFileMaxAge,  // days
			MaxBackups: logFileMaxBackups,
		}

		w := io.MultiWriter(os.Stdout, logTarget)
		logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}

	slog.SetDefault(logger)
}

// ReadConfigFromEnvAndInitLogger configures the default slog logger from
// the given environment variable names.
func ReadConfigFromEnvAndInitLogger(
	logLevelEnv string,
	includeSrcEnv string,
	logToFileEnv string,
	filenameEnv string,
	maxSizeEnv string,
	maxAgeEnv string,
	maxBackupsEnv string,
) {
	maxSize, _ := strconv.Atoi(os.Getenv(maxSizeEnv))
	maxAge, _ := strconv.Atoi(os.Getenv(maxAgeEnv))
	maxBackups, _ := strconv.Atoi(os.Getenv(maxBackupsEnv))

	InitLogger(
		os.Getenv(logLevelEnv),
		os.Getenv(includeSrcEnv) == "true",
		os.Getenv(logToFileEnv) == "true",
		os.Getenv(filenameEnv),
		maxSize,
		maxAge,
		maxBackups,
	)
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
