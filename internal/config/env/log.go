package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"prize_wheel/internal/config"
)

const (
	logLevelEnvName      = "LOG_LEVEL"
	logFormatEnvName     = "LOG_FORMAT"
	logOutputEnvName     = "LOG_OUTPUT"
	logMaxSizeEnvName    = "LOG_MAX_SIZE"
	logMaxBackupsEnvName = "LOG_MAX_BACKUPS"
	logMaxAgeEnvName     = "LOG_MAX_AGE"
	logCompressEnvName   = "LOG_COMPRESS"
)

type logConfig struct {
	level      string
	format     string
	output     string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
}

func NewLogConfig() (config.LogConfig, error) {
	level := strings.ToLower(os.Getenv(logLevelEnvName))
	if len(level) == 0 {
		level = "info"
	}

	format := strings.ToLower(os.Getenv(logFormatEnvName))
	switch format {
	case "":
		format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	output := os.Getenv(logOutputEnvName)
	if len(output) == 0 {
		output = "stderr"
	}

	cfg := &logConfig{
		level:  level,
		format: format,
		output: output,
	}

	var err error
	if cfg.maxSizeMB, err = intEnv(logMaxSizeEnvName, 100); err != nil {
		return nil, err
	}
	if cfg.maxBackups, err = intEnv(logMaxBackupsEnvName, 3); err != nil {
		return nil, err
	}
	if cfg.maxAgeDays, err = intEnv(logMaxAgeEnvName, 28); err != nil {
		return nil, err
	}
	if v := os.Getenv(logCompressEnvName); len(v) != 0 {
		if cfg.compress, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%s: %w", logCompressEnvName, err)
		}
	}

	return cfg, nil
}

// intEnv неотрицательное целое из окружения
func intEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if len(v) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return n, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Format() string {
	return cfg.format
}

func (cfg *logConfig) Output() string {
	return cfg.output
}

func (cfg *logConfig) MaxSizeMB() int {
	return cfg.maxSizeMB
}

func (cfg *logConfig) MaxBackups() int {
	return cfg.maxBackups
}

func (cfg *logConfig) MaxAgeDays() int {
	return cfg.maxAgeDays
}

func (cfg *logConfig) Compress() bool {
	return cfg.compress
}
