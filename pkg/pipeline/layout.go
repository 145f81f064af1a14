package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/layout"
	"github.com/matzehuels/mosaic/pkg/observability"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout runs one layout pass over the scene and exports it.
func GenerateLayout(ctx context.Context, opts Options) (document.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return document.Layout{}, err
	}
	sc := opts.EffectiveScene()

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, sc.SectionCount(), sc.ItemTotal())
	start := time.Now()

	res, err := sc.Builder(layout.WithLogger(opts.Logger)).Prepare()
	hooks.OnLayoutComplete(ctx, sc.ItemTotal(), time.Since(start), err)
	if err != nil {
		return document.Layout{}, fmt.Errorf("prepare layout: %w", err)
	}

	doc := document.FromResult(res, document.Meta{Name: sc.Name, Viewport: sc.Viewport})
	doc.Style = opts.Style
	return doc, nil
}
