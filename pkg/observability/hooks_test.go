package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	var lh LayoutHooks = NoopLayoutHooks{}
	lh.OnLayoutStart(ctx, 12)
	lh.OnLayoutComplete(ctx, 3, 0, time.Millisecond)

	var ph PathHooks = NoopPathHooks{}
	ph.OnSearchStart(ctx, "Alice", "Carol")
	ph.OnSearchComplete(ctx, "Alice", "Carol", 2, true, time.Millisecond)

	var ch CacheHooks = NoopCacheHooks{}
	ch.OnCacheHit(ctx, "layout")
	ch.OnCacheMiss(ctx, "layout")
	ch.OnCacheSet(ctx, "layout", 256)
}

type recordingLayoutHooks struct {
	NoopLayoutHooks
	starts    int
	completes int
}

func (h *recordingLayoutHooks) OnLayoutStart(context.Context, int) { h.starts++ }
func (h *recordingLayoutHooks) OnLayoutComplete(context.Context, int, int, time.Duration) {
	h.completes++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits   []string
	misses []string
}

func (h *recordingCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.hits = append(h.hits, keyType)
}

func (h *recordingCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.misses = append(h.misses, keyType)
}

func TestGlobalHooksRegistry(t *testing.T) {
	defer Reset()

	ctx := context.Background()

	lh := &recordingLayoutHooks{}
	SetLayoutHooks(lh)

	Layout().OnLayoutStart(ctx, 5)
	Layout().OnLayoutComplete(ctx, 2, 1, time.Millisecond)

	if lh.starts != 1 {
		t.Errorf("starts = %d, want 1", lh.starts)
	}
	if lh.completes != 1 {
		t.Errorf("completes = %d, want 1", lh.completes)
	}

	ch := &recordingCacheHooks{}
	SetCacheHooks(ch)

	Cache().OnCacheMiss(ctx, "layout")
	Cache().OnCacheHit(ctx, "layout")

	if len(ch.hits) != 1 || ch.hits[0] != "layout" {
		t.Errorf("hits = %v, want [layout]", ch.hits)
	}
	if len(ch.misses) != 1 {
		t.Errorf("misses = %v, want one entry", ch.misses)
	}
}

func TestSetNilHooksKeepsNoop(t *testing.T) {
	defer Reset()

	SetLayoutHooks(nil)
	SetPathHooks(nil)
	SetCacheHooks(nil)

	if Layout() == nil {
		t.Error("Layout() = nil, want no-op hooks")
	}
	if Path() == nil {
		t.Error("Path() = nil, want no-op hooks")
	}
	if Cache() == nil {
		t.Error("Cache() = nil, want no-op hooks")
	}
}

func TestReset(t *testing.T) {
	lh := &recordingLayoutHooks{}
	SetLayoutHooks(lh)
	Reset()

	Layout().OnLayoutStart(context.Background(), 1)

	if lh.starts != 0 {
		t.Errorf("starts = %d, want 0 after Reset", lh.starts)
	}
}
