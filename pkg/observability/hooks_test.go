package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestRegistryDefaults(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestRegisterKeepsUnsetMembers(t *testing.T) {
	Reset()
	defer Reset()

	p := &countingHooks{}
	SetPipelineHooks(p)
	Register(Hooks{Cache: p})
	SetPipelineHooks(nil)

	if Pipeline() != p {
		t.Errorf("Pipeline() = %T, want registered hooks", Pipeline())
	}
	if Cache() != p {
		t.Errorf("Cache() = %T, want registered hooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}

	Pipeline().OnExportStart(context.Background(), 7)
	Cache().OnCacheHit(context.Background(), "source")
	if p.calls != 2 {
		t.Errorf("calls = %d, want 2", p.calls)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := Logging(l)
	ctx := context.Background()

	tests := []struct {
		name string
		emit func()
		want string
	}{
		{"export start", func() { h.Pipeline.OnExportStart(ctx, 7) }, "export start"},
		{"export done", func() { h.Pipeline.OnExportComplete(ctx, 7, 6, time.Second, nil) }, "files=6"},
		{"export failed", func() { h.Pipeline.OnExportComplete(ctx, 7, 0, time.Second, errors.New("disk full")) }, "disk full"},
		{"source", func() { h.Pipeline.OnScopeStart(ctx, 7, 256) }, "size=256"},
		{"file", func() { h.Pipeline.OnFileWritten(ctx, "papermodel-all.png") }, "papermodel-all.png"},
		{"miss", func() { h.Cache.OnCacheMiss(ctx, "forest") }, "kind=forest"},
		{"set", func() { h.Cache.OnCacheSet(ctx, "source", 1024) }, "bytes=1024"},
		{"response", func() { h.HTTP.OnResponse(ctx, "GET", "/net.png", 200, time.Millisecond) }, "status=200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.emit()
			if got := buf.String(); !strings.Contains(got, tt.want) {
				t.Errorf("log = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestLoggingQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	h := Logging(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	h.Cache.OnCacheHit(context.Background(), "source")
	if buf.Len() != 0 {
		t.Errorf("log = %q, want nothing at info level", buf.String())
	}
}

type countingHooks struct {
	NoopPipelineHooks
	NoopCacheHooks
	calls int
}

func (c *countingHooks) OnExportStart(context.Context, int) { c.calls++ }
func (c *countingHooks) OnCacheHit(context.Context, string) { c.calls++ }
