// Package observability provides hooks for export, cache and preview
// server events.
//
// Library packages emit events through the registered hooks; binaries may
// register implementations at startup. The defaults do nothing. [Logging]
// forwards every event to a charmbracelet logger at debug level and is what
// papernet --verbose installs.
//
//	observability.Register(observability.Logging(logger))
//
//	observability.Pipeline().OnExportStart(ctx, cells)
//	// ... export ...
//	observability.Pipeline().OnExportComplete(ctx, cells, files, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the export pipeline.
type PipelineHooks interface {
	OnExportStart(ctx context.Context, cells int)
	OnExportComplete(ctx context.Context, cells, files int, duration time.Duration, err error)

	// Source image rendering; size is the edge of the square in pixels.
	OnScopeStart(ctx context.Context, cells, size int)
	OnScopeComplete(ctx context.Context, cells, size int, duration time.Duration, err error)

	OnFileWritten(ctx context.Context, path string)
}

// CacheHooks receives events from render cache lookups. kind is the
// artifact ("source" or "forest").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

// HTTPHooks receives events from the preview server.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)
}

// Hooks bundles the three hook sets. Any field may be nil.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	HTTP     HTTPHooks
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnExportStart(context.Context, int) {}
func (NoopPipelineHooks) OnExportComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnScopeStart(context.Context, int, int) {}
func (NoopPipelineHooks) OnScopeComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnFileWritten(context.Context, string) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string) {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string) {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string) {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	hooksMu sync.RWMutex
	current = noop()
)

func noop() Hooks {
	return Hooks{NoopPipelineHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}}
}

// Register installs the non-nil members of h, leaving the others as they
// were.
func Register(h Hooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h.Pipeline != nil {
		current.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		current.Cache = h.Cache
	}
	if h.HTTP != nil {
		current.HTTP = h.HTTP
	}
}

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) { Register(Hooks{Pipeline: h}) }

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) { Register(Hooks{Cache: h}) }

// SetHTTPHooks registers custom HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) { Register(Hooks{HTTP: h}) }

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return current.Pipeline
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return current.Cache
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return current.HTTP
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	current = noop()
}
