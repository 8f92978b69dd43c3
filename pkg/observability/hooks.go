// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about document edits, validation, and graph rebuilds.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Session().OnMutation(ctx, "delete", path, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from edit sessions.
type SessionHooks interface {
	// Mutation events; kind is one of "update", "delete", "add", "rename",
	// path is the dot-notation target.
	OnMutation(ctx context.Context, kind, path string, err error)

	// Validation events
	OnValidation(ctx context.Context, textLen int, err error)

	// History events; op is "push", "undo", or "redo".
	OnHistory(ctx context.Context, op string, undoDepth, redoDepth int)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from graph rebuilds.
type LayoutHooks interface {
	// OnRebuildStart records the start of a graph rebuild.
	OnRebuildStart(ctx context.Context)

	// OnRebuildComplete records a finished rebuild and its result size.
	OnRebuildComplete(ctx context.Context, nodeCount, edgeCount int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnMutation(context.Context, string, string, error) {}
func (NoopSessionHooks) OnValidation(context.Context, int, error)          {}
func (NoopSessionHooks) OnHistory(context.Context, string, int, int)       {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnRebuildStart(context.Context)                          {}
func (NoopLayoutHooks) OnRebuildComplete(context.Context, int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks SessionHooks = NoopSessionHooks{}
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	hooksMu      sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any edits.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any rebuilds.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	layoutHooks = NoopLayoutHooks{}
}
