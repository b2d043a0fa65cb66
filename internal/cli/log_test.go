package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/papernet/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("saved layout") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("loaded layout") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("loaded layout") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	defer observability.Reset()

	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q, want only the message after SetLogLevel", out)
	}

	observability.Cache().OnCacheMiss(context.Background(), "source")
	if !strings.Contains(buf.String(), "cache miss") {
		t.Errorf("log output = %q, want cache events at debug level", buf.String())
	}
}

func TestStopwatch(t *testing.T) {
	var buf bytes.Buffer
	sw := startStopwatch(newLogger(&buf, log.DebugLevel))

	time.Sleep(5 * time.Millisecond)
	if d := sw.lap("loaded layout"); d < 5*time.Millisecond {
		t.Errorf("lap() = %v, want at least 5ms", d)
	}
	if d := sw.lap("rendered"); d >= 5*time.Millisecond {
		t.Errorf("second lap() = %v, want time since the first lap only", d)
	}
	sw.done("Exported 6 files")

	out := buf.String()
	for _, want := range []string{"loaded layout", "rendered", "Exported 6 files ("} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}

	custom := newLogger(&bytes.Buffer{}, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}
