package observability

import (
	"context"
	"maps"
	"sync"
	"time"
)

// Recorder implements every hook interface by counting events. It backs
// tests and the server's /debug/stats endpoint.
type Recorder struct {
	mu    sync.Mutex
	stats Stats
}

// Stats is a snapshot of recorded events.
type Stats struct {
	Layouts        int            `json:"layouts"`
	LayoutErrors   int            `json:"layout_errors"`
	LayoutTime     time.Duration  `json:"layout_time_ns"`
	Renders        int            `json:"renders"`
	RenderErrors   int            `json:"render_errors"`
	CacheHits      map[string]int `json:"cache_hits"`
	CacheMisses    map[string]int `json:"cache_misses"`
	CacheBytes     int            `json:"cache_bytes"`
	Requests       int            `json:"requests"`
	ResponseStatus map[int]int    `json:"response_status"`
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{stats: Stats{
		CacheHits:      map[string]int{},
		CacheMisses:    map[string]int{},
		ResponseStatus: map[int]int{},
	}}
}

// Install registers r for all hook kinds.
func (r *Recorder) Install() {
	SetPipelineHooks(r)
	SetCacheHooks(r)
	SetHTTPHooks(r)
}

// Snapshot returns a copy of the current counts.
func (r *Recorder) Snapshot() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.stats
	s.CacheHits = maps.Clone(r.stats.CacheHits)
	s.CacheMisses = maps.Clone(r.stats.CacheMisses)
	s.ResponseStatus = maps.Clone(r.stats.ResponseStatus)
	return s
}

func (r *Recorder) OnLayoutStart(context.Context, int, int) {}

func (r *Recorder) OnLayoutComplete(_ context.Context, _ int, d time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Layouts++
	r.stats.LayoutTime += d
	if err != nil {
		r.stats.LayoutErrors++
	}
}

func (r *Recorder) OnRenderStart(context.Context, []string) {}

func (r *Recorder) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Renders++
	if err != nil {
		r.stats.RenderErrors++
	}
}

func (r *Recorder) OnCacheHit(_ context.Context, kind string) {
	r.mu.Lock()
	r.stats.CacheHits[kind]++
	r.mu.Unlock()
}

func (r *Recorder) OnCacheMiss(_ context.Context, kind string) {
	r.mu.Lock()
	r.stats.CacheMisses[kind]++
	r.mu.Unlock()
}

func (r *Recorder) OnCacheSet(_ context.Context, _ string, size int) {
	r.mu.Lock()
	r.stats.CacheBytes += size
	r.mu.Unlock()
}

func (r *Recorder) OnRequest(context.Context, string, string) {
	r.mu.Lock()
	r.stats.Requests++
	r.mu.Unlock()
}

func (r *Recorder) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	r.mu.Lock()
	r.stats.ResponseStatus[status]++
	r.mu.Unlock()
}

var (
	_ PipelineHooks = (*Recorder)(nil)
	_ CacheHooks    = (*Recorder)(nil)
	_ HTTPHooks     = (*Recorder)(nil)
)
