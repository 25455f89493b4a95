package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	Name   string
	Output io.Writer
	Format string
	Level  string
}

type Option func(opts *Options)

func NameOption(name string) Option {
	return func(opts *Options) {
		opts.Name = name
	}
}

func OutputOption(out io.Writer) Option {
	return func(opts *Options) {
		opts.Output = out
	}
}

func FormatOption(format string) Option {
	return func(opts *Options) {
		opts.Format = format
	}
}

func LevelOption(level string) Option {
	return func(opts *Options) {
		opts.Level = level
	}
}

// New создаёт logrus логгер. Неизвестный уровень трактуется как info
func New(opts ...Option) *logrus.Entry {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	log := logrus.New()
	if options.Output != nil {
		log.SetOutput(options.Output)
	}

	switch options.Format {
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{
			DisableHTMLEscape: true,
			TimestampFormat:   "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	lvl, err := logrus.ParseLevel(options.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	entry := logrus.NewEntry(log)
	if options.Name != "" {
		entry = entry.WithField("logger", options.Name)
	}
	return entry
}

// Discard логгер для тестов
func Discard() *logrus.Entry {
	return New(OutputOption(io.Discard), LevelOption("panic"))
}

// Caller место вызова в виде dir/file.go:line
func Caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file = "<???>"
	} else {
		file = filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file))
	}
	return fmt.Sprintf("%s:%d", file, line)
}
