package shell

import (
	"bytes"
	"strings"
	"sync"

	"go.trai.ch/maven3/internal/core/ports"
)

// LogWriter turns process output into one Info record per line.
// It is used as the output sink when the build log is structured.
type LogWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	buf    []byte
}

// NewLogWriter creates a LogWriter logging through logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{logger: logger}
}

func (w *LogWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	// Scan for newlines
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])

		// Advance buffer
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *LogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *LogWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}
