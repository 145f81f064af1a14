package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      layoutFlags
		formatsStr string
		output     string
	)
	opts := pipeline.Options{Style: pipeline.DefaultStyle}

	cmd := &cobra.Command{
		Use:   "render [scene | layout.json]",
		Short: "Render a scene or layout document",
		Long: `Render a scene or layout document.

Formats:
  svg   tiles coloured by size, with headers and footers
  json  the layout document
  dot   Graphviz source of the frame tree
  tree  the frame tree rendered to SVG
  pdf   SVG converted with rsvg-convert
  png   SVG converted with rsvg-convert at 2x

Inputs ending in .layout.json are rendered as-is; anything else is read as
a scene and laid out first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], flags, opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, tree, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "SVG style: simple (default), wireframe")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label tiles with their index path")
	cmd.Flags().BoolVar(&opts.SectionFrames, "section-frames", false, "outline section container frames")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include frames in tree/dot node labels")
	cmd.Flags().StringVar(&opts.Background, "background", "", "SVG background colour")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, flags layoutFlags, opts pipeline.Options, output string) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger
	opts.Refresh = flags.refresh

	var (
		doc       document.Layout
		layoutHit bool
	)
	if strings.HasSuffix(input, ".layout.json") {
		doc, err = document.ReadFile(input)
		if err != nil {
			return fmt.Errorf("load layout %s: %w", input, err)
		}
		layoutHit = true
	} else {
		lopts, err := flags.options(input)
		if err != nil {
			return err
		}
		opts.Scene = lopts.Scene
		opts.GridWidth = lopts.GridWidth
		opts.Viewport = lopts.Viewport
		doc, layoutHit, err = runner.LayoutWithCacheInfo(ctx, opts)
		if err != nil {
			return fmt.Errorf("compute layout: %w", err)
		}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()
	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  layoutHit && renderHit,
		sections:  len(doc.Sections),
		items:     doc.ItemCount(),
	})
}
