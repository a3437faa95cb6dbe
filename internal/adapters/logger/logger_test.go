package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/maven3/internal/adapters/logger"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_InfoWarn_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("Executing: java -cp boot.jar")
	l.Warn("Maven was interrupted")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="Executing: java -cp boot.jar"`)
	assert.Contains(t, out, "level=WARN")
}

func TestLogger_Error_TextChain(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	err := zerr.With(zerr.Wrap(domain.ErrClassworldsJarNotFound, "boot directory"), "boot_dir", "/opt/maven3/boot")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "Error: boot directory")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "couldn't find classworlds jar")
	assert.Contains(t, out, "boot_dir=/opt/maven3/boot")
}

func TestLogger_Error_Nil(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Error_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetFormat("JSON")
	require.True(t, l.JSON())

	l.Error(zerr.With(zerr.Wrap(domain.ErrLaunchFailed, "exec: no such file"), "command", "java"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "exec: no such file: command execution failed", record["msg"])
	assert.Equal(t, "java", record["command"])
}

func TestLogger_SetOutputKeepsFormat(t *testing.T) {
	l := logger.New()
	l.SetJSON(true)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Info("hello")

	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	l.SetFormat("text")
	assert.False(t, l.JSON())
}

func TestFormatChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "single",
			err:  zerr.New("build aborted"),
			want: "Error: build aborted",
		},
		{
			name: "wrapped",
			err:  zerr.Wrap(zerr.New("inner"), "outer"),
			want: "Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			name: "standard cause",
			err:  zerr.Wrap(errors.New("permission denied"), "failed to read directory"),
			want: "Error: failed to read directory\n\n  Caused by:\n    → permission denied",
		},
		{
			name: "empty message skipped",
			err:  zerr.With(errors.New("plain"), "k", "v"),
			want: "Error: plain",
		},
		{
			name: "multi-line message",
			err:  zerr.New("first\nsecond"),
			want: "Error: first\n       second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatChain(tt.err))
		})
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				l.SetJSON(i%4 == 0)
			}
			l.Info("line")
		}(i)
	}
	wg.Wait()
}
