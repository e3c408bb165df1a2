// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout passes, path searches, and cache operations.
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
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(ctx, memberCount)
//	// ... compute layout ...
//	observability.Layout().OnLayoutComplete(ctx, familyCount, cycleCount, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a full layout pass.
	OnLayoutStart(ctx context.Context, memberCount int)

	// OnLayoutComplete records a finished layout pass, including the number
	// of family blocks composited and relationship cycles detected.
	OnLayoutComplete(ctx context.Context, familyCount, cycleCount int, duration time.Duration)
}

// =============================================================================
// Path Search Hooks
// =============================================================================

// PathHooks receives events from shortest-path searches.
type PathHooks interface {
	// OnSearchStart records the beginning of a path search.
	OnSearchStart(ctx context.Context, from, to string)

	// OnSearchComplete records a finished search. hops is the edge count of
	// the returned path; found is false when the endpoints are disconnected.
	OnSearchComplete(ctx context.Context, from, to string, hops int, found bool, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, int)                        {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, int, int, time.Duration) {}

// NoopPathHooks is a no-op implementation of PathHooks.
type NoopPathHooks struct{}

func (NoopPathHooks) OnSearchStart(context.Context, string, string) {}
func (NoopPathHooks) OnSearchComplete(context.Context, string, string, int, bool, time.Duration) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Registry
// =============================================================================

var (
	mu          sync.RWMutex
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	pathHooks   PathHooks   = NoopPathHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
)

// SetLayoutHooks registers layout hooks. Pass nil to restore the no-op default.
// This should be called once at application startup, before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopLayoutHooks{}
	}
	layoutHooks = h
}

// SetPathHooks registers path search hooks. Pass nil to restore the no-op default.
func SetPathHooks(h PathHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopPathHooks{}
	}
	pathHooks = h
}

// SetCacheHooks registers cache hooks. Pass nil to restore the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopCacheHooks{}
	}
	cacheHooks = h
}

// Reset restores all hooks to their no-op defaults. Primarily for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	pathHooks = NoopPathHooks{}
	cacheHooks = NoopCacheHooks{}
}

// Layout returns the registered layout hooks (never nil).
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Path returns the registered path search hooks (never nil).
func Path() PathHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pathHooks
}

// Cache returns the registered cache hooks (never nil).
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
