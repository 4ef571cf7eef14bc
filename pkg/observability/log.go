package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failed edits and
// store calls are logged as warnings.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger, or to the default logger
// when logger is nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

// Register installs h for every hook category.
func (h *LogHooks) Register() {
	SetEditHooks(h)
	SetSnapHooks(h)
	SetStoreHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnEdit(_ context.Context, op, projectID string, removed, added int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("edit refused", "op", op, "project", projectID, "err", err)
		return
	}
	h.Logger.Debug("edit", "op", op, "project", projectID, "removed", removed, "added", added, "took", d)
}

func (h *LogHooks) OnSnap(_ context.Context, projectID, kind string, elements int, d time.Duration) {
	if kind == "" {
		kind = "none"
	}
	h.Logger.Debug("snap", "project", projectID, "kind", kind, "elements", elements, "took", d)
}

func (h *LogHooks) OnStoreOp(_ context.Context, backend, op string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("store", "backend", backend, "op", op, "err", err)
		return
	}
	h.Logger.Debug("store", "backend", backend, "op", op, "took", d)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}

var (
	_ EditHooks  = (*LogHooks)(nil)
	_ SnapHooks  = (*LogHooks)(nil)
	_ StoreHooks = (*LogHooks)(nil)
	_ HTTPHooks  = (*LogHooks)(nil)
)
