package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/pipeline"
	"github.com/matzehuels/mosaic/pkg/scene"
)

// layoutFlags are the flags shared by every command that lays out a scene.
type layoutFlags struct {
	gridWidth int
	viewport  float64
	noCache   bool
	refresh   bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.gridWidth, "grid-width", 0, "grid columns (default: scene value or 3)")
	cmd.Flags().Float64Var(&f.viewport, "viewport", 0, "viewport width override in points")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
}

// options loads the scene at path and applies the flags.
func (f *layoutFlags) options(path string) (pipeline.Options, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("load scene %s: %w", path, err)
	}
	return pipeline.Options{
		Scene:     sc,
		GridWidth: f.gridWidth,
		Viewport:  f.viewport,
		Refresh:   f.refresh,
	}, nil
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  layoutFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Compute a layout document from a scene file",
		Long: `Compute a layout document from a scene file.

The scene (JSON, TOML or YAML) lists sections, item counts and size
overrides. The output is a layout.json holding every section's grid
placement and pixel frames; render it with 'mosaic render'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scene>.layout.json)")
	flags.register(cmd)
	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input string, flags layoutFlags, output string) error {
	opts, err := flags.options(input)
	if err != nil {
		return err
	}
	opts.Logger = c.Logger

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	doc, cacheHit, err := runner.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("laid out %d items", doc.ItemCount()))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", input) + ".layout.json"
	}
	if err := document.WriteFile(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(doc.Sections), doc.ItemCount(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)
	return nil
}
