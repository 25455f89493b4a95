package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(
		NameOption("wheel"),
		OutputOption(&buf),
		FormatOption(FormatJSON),
		LevelOption("debug"),
	)

	log.WithField("winner", 2).Debug("spin started")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "wheel", line["logger"])
	assert.Equal(t, "spin started", line["msg"])
	assert.EqualValues(t, 2, line["winner"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(OutputOption(&buf), LevelOption("loud"))

	assert.Equal(t, logrus.InfoLevel, log.Logger.GetLevel())
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestCaller(t *testing.T) {
	assert.True(t, strings.HasPrefix(Caller(0), "logger/logger_test.go:"))
}

func TestParseOutput(t *testing.T) {
	assert.Equal(t, io.Discard, ParseOutput("none", Rotation{}))
	assert.Equal(t, os.Stdout, ParseOutput("stdout", Rotation{}))
	assert.Equal(t, os.Stderr, ParseOutput("", Rotation{}))

	path := filepath.Join(t.TempDir(), "wheel.log")
	out := ParseOutput(path, Rotation{MaxSizeMB: 1, MaxBackups: 2})
	file, ok := out.(*lumberjack.Logger)
	require.True(t, ok)
	t.Cleanup(func() { _ = file.Close() })
	assert.Equal(t, 2, file.MaxBackups)

	log := New(OutputOption(out), FormatOption(FormatJSON))
	log.Info("rotating")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"rotating"`)
}
