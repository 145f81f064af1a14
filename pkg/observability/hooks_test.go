package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, 2, 10)
	p.OnLayoutComplete(ctx, 10, time.Millisecond, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/layout")
	h.OnResponse(ctx, "POST", "/v1/layout", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestRecorder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	ctx := context.Background()

	r := NewRecorder()
	r.Install()

	Pipeline().OnLayoutComplete(ctx, 5, 2*time.Millisecond, nil)
	Pipeline().OnLayoutComplete(ctx, 0, time.Millisecond, errors.New("bad grid"))
	Pipeline().OnRenderComplete(ctx, []string{"svg", "json"}, time.Millisecond, nil)
	Cache().OnCacheMiss(ctx, "layout")
	Cache().OnCacheSet(ctx, "layout", 100)
	Cache().OnCacheHit(ctx, "layout")
	HTTP().OnRequest(ctx, "GET", "/healthz")
	HTTP().OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	s := r.Snapshot()
	if s.Layouts != 2 || s.LayoutErrors != 1 {
		t.Errorf("layouts = %d/%d errors, want 2/1", s.Layouts, s.LayoutErrors)
	}
	if s.LayoutTime != 3*time.Millisecond {
		t.Errorf("LayoutTime = %v, want 3ms", s.LayoutTime)
	}
	if s.Renders != 1 {
		t.Errorf("Renders = %d, want 1", s.Renders)
	}
	if s.CacheHits["layout"] != 1 || s.CacheMisses["layout"] != 1 || s.CacheBytes != 100 {
		t.Errorf("cache stats = %+v", s)
	}
	if s.Requests != 1 || s.ResponseStatus[200] != 1 {
		t.Errorf("http stats = %d requests, %v", s.Requests, s.ResponseStatus)
	}

	s.CacheHits["layout"] = 99
	if r.Snapshot().CacheHits["layout"] != 1 {
		t.Error("Snapshot() should return a copy")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
