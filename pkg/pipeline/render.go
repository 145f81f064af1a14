package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/render"
	"github.com/matzehuels/mosaic/pkg/render/sink"
	"github.com/matzehuels/mosaic/pkg/render/treeview"
)

// Render produces every requested format from doc. Formats render
// concurrently; the first failure cancels the rest.
func Render(ctx context.Context, doc document.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(gctx, doc, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("rendered artifacts", "formats", opts.Formats, "duration", time.Since(start))
	return artifacts, nil
}

func renderFormat(ctx context.Context, doc document.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderSVG(doc, opts)
	case FormatJSON:
		return sink.RenderJSON(doc, sink.WithJSONStyle(opts.Style))
	case FormatDOT:
		return []byte(treeview.ToDOT(doc, treeview.Options{Detailed: opts.Detailed})), nil
	case FormatTree:
		return treeview.RenderSVG(ctx, treeview.ToDOT(doc, treeview.Options{Detailed: opts.Detailed}))
	case FormatPDF:
		svg, err := renderSVG(doc, opts)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, svg)
	case FormatPNG:
		svg, err := renderSVG(doc, opts)
		if err != nil {
			return nil, err
		}
		return render.ToPNG(ctx, svg, DefaultPNGScale)
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", format)
}

func renderSVG(doc document.Layout, opts Options) ([]byte, error) {
	style, err := sink.StyleByName(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.SectionFrames {
		svgOpts = append(svgOpts, sink.WithSectionFrames())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return sink.RenderSVG(doc, svgOpts...), nil
}
