package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level.
type LogHooks struct {
	logger *log.Logger
}

// Logging returns hooks that log through l, tagged with a "hook" prefix.
func Logging(l *log.Logger) Hooks {
	h := &LogHooks{logger: l.WithPrefix("hook")}
	return Hooks{Pipeline: h, Cache: h, HTTP: h}
}

func (h *LogHooks) OnExportStart(_ context.Context, cells int) {
	h.logger.Debug("export start", "cells", cells)
}

func (h *LogHooks) OnExportComplete(_ context.Context, cells, files int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "cells", cells, "took", d, "err", err)
		return
	}
	h.logger.Debug("export done", "cells", cells, "files", files, "took", d)
}

func (h *LogHooks) OnScopeStart(_ context.Context, cells, size int) {
	h.logger.Debug("source start", "cells", cells, "size", size)
}

func (h *LogHooks) OnScopeComplete(_ context.Context, cells, size int, d time.Duration, err error) {
	h.logger.Debug("source done", "cells", cells, "size", size, "took", d, "err", err)
}

func (h *LogHooks) OnFileWritten(_ context.Context, path string) {
	h.logger.Debug("wrote", "path", path)
}

func (h *LogHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h *LogHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}
