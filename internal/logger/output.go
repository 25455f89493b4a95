package logger

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation параметры ротации файла журнала
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ParseOutput приёмник журнала по имени: stdout, stderr, none или путь к файлу с ротацией
func ParseOutput(output string, rotation Rotation) io.Writer {
	switch output {
	case "none", "null":
		return io.Discard
	case "stdout":
		return os.Stdout
	case "stderr", "":
		return os.Stderr
	default:
		return &lumberjack.Logger{
			Filename:   output,
			MaxSize:    rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAgeDays,
			LocalTime:  true,
			Compress:   rotation.Compress,
		}
	}
}
