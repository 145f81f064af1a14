package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/observability"
)

// Runner executes the pipeline with caching. It holds no per-run state and
// is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching; a nil keyer
// uses the default keyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs layout and render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	layoutStart := time.Now()
	doc, layoutHit, err := r.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = doc
	result.Stats.Sections = len(doc.Sections)
	result.Stats.Items = doc.ItemCount()
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"sections", result.Stats.Sections,
		"items", result.Stats.Items,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes the layout document, reporting whether it
// came from cache. Refresh skips the lookup but still stores the result.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, opts Options) (document.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return document.Layout{}, false, err
	}

	sceneData, err := json.Marshal(opts.Scene)
	if err != nil {
		return document.Layout{}, false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	key := r.Keyer.LayoutKey(cache.Hash(sceneData), opts.LayoutKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if doc, err := document.Unmarshal(data); err == nil {
				hooks.OnCacheHit(ctx, "layout")
				doc.Style = opts.Style
				return doc, true, nil
			}
		}
	}
	hooks.OnCacheMiss(ctx, "layout")

	doc, err := GenerateLayout(ctx, opts)
	if err != nil {
		return document.Layout{}, false, err
	}

	if data, err := document.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache layout", "err", err)
		} else {
			hooks.OnCacheSet(ctx, "layout", len(data))
		}
	}
	return doc, false, nil
}

// Layout is LayoutWithCacheInfo without the hit flag.
func (r *Runner) Layout(ctx context.Context, opts Options) (document.Layout, error) {
	doc, _, err := r.LayoutWithCacheInfo(ctx, opts)
	return doc, err
}

// RenderWithCacheInfo renders doc in every requested format. It reports a
// hit only when all formats came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc document.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	docData, err := document.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	docHash := cache.Hash(docData)
	hooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				hooks.OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
		}
		hooks.OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, doc, renderOpts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
		artifacts[format] = data
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the hit flag.
func (r *Runner) Render(ctx context.Context, doc document.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
