package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/observability"
	"github.com/matzehuels/mosaic/pkg/scene"
)

func testScene() *scene.Scene {
	return &scene.Scene{
		Name:     "demo",
		Viewport: 300,
		Sections: []scene.Section{{Items: 3}},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"dot", false},
		{"tree", false},
		{"pdf", false},
		{"png", false},
		{"SVG", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errs.GetCode(err))
		}
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"wireframe", false},
		{"handdrawn", true},
		{"", true},
	}

	for _, tt := range tests {
		if err := ValidateStyle(tt.style); (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Scene: testScene()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style = %q, want %q", opts.Style, DefaultStyle)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"no scene", Options{}, errs.ErrCodeInvalidInput},
		{"narrow grid", Options{Scene: testScene(), GridWidth: 2}, errs.ErrCodeInvalidGrid},
		{"negative viewport", Options{Scene: testScene(), Viewport: -1}, errs.ErrCodeInvalidInput},
		{"bad format", Options{Scene: testScene(), Formats: []string{"gif"}}, errs.ErrCodeInvalidFormat},
		{"bad style", Options{Scene: testScene(), Style: "neon"}, errs.ErrCodeInvalidStyle},
		{"bad scene", Options{Scene: &scene.Scene{Viewport: -5}}, errs.ErrCodeInvalidScene},
		{"viewport override under insets", Options{Scene: insetScene(), Viewport: 30}, errs.ErrCodeInvalidScene},
		{"grid override leaves no room", Options{Scene: spacedScene(), GridWidth: 5}, errs.ErrCodeInvalidScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errs.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func insetScene() *scene.Scene {
	sc := testScene()
	sc.ContentInsets = geom.Insets{Left: 20, Right: 20}
	return sc
}

func spacedScene() *scene.Scene {
	sc := testScene()
	sc.Sections[0].InterItemSpacing = 80
	return sc
}

func TestGenerateLayout_RejectsDegenerateGeometry(t *testing.T) {
	for name, opts := range map[string]Options{
		"viewport override": {Scene: insetScene(), Viewport: 30},
		"spacing":           {Scene: &scene.Scene{Viewport: 100, Sections: []scene.Section{{Items: 3, InterItemSpacing: 80}}}},
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := GenerateLayout(context.Background(), opts)
			if !errs.Is(err, errs.ErrCodeInvalidScene) {
				t.Fatalf("GenerateLayout() = %+v, %v, want INVALID_SCENE", doc, err)
			}
		})
	}

	// the same scene at its own viewport is fine
	if _, err := GenerateLayout(context.Background(), Options{Scene: insetScene()}); err != nil {
		t.Errorf("GenerateLayout() error: %v", err)
	}
}

func TestEffectiveScene(t *testing.T) {
	sc := testScene()
	opts := Options{Scene: sc, GridWidth: 4, Viewport: 400}

	eff := opts.EffectiveScene()
	if eff.GridWidth != 4 || eff.Viewport != 400 {
		t.Errorf("EffectiveScene() = %d/%g, want 4/400", eff.GridWidth, eff.Viewport)
	}
	if sc.GridWidth != 0 || sc.Viewport != 300 {
		t.Error("EffectiveScene() should not modify the input scene")
	}
}

func TestGenerateLayout(t *testing.T) {
	doc, err := GenerateLayout(context.Background(), Options{Scene: testScene()})
	if err != nil {
		t.Fatalf("GenerateLayout() error: %v", err)
	}
	if doc.Name != "demo" || doc.GridWidth != 3 {
		t.Errorf("GenerateLayout() = %q/%d, want demo/3", doc.Name, doc.GridWidth)
	}
	if doc.Width != 300 || doc.Height != 200 {
		t.Errorf("content size = %gx%g, want 300x200", doc.Width, doc.Height)
	}
	want := []string{"big_square", "small_square", "small_square"}
	for i, size := range want {
		c, _ := doc.Cell(0, i)
		if c.Size != size {
			t.Errorf("cell %d size = %q, want %q", i, c.Size, size)
		}
	}
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	doc, err := GenerateLayout(ctx, Options{Scene: testScene()})
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := Render(ctx, doc, Options{Formats: []string{"svg", "json", "dot"}, Labels: true})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(artifacts) != 3 {
		t.Fatalf("Render() returned %d artifacts, want 3", len(artifacts))
	}
	if !strings.Contains(string(artifacts["svg"]), "<svg") {
		t.Error("svg artifact missing <svg> tag")
	}
	if !strings.HasPrefix(string(artifacts["dot"]), "digraph G {") {
		t.Error("dot artifact should be a digraph")
	}

	var back document.Layout
	if err := json.Unmarshal(artifacts["json"], &back); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if back.Style != DefaultStyle || back.ItemCount() != 3 {
		t.Errorf("json artifact = style %q, %d items", back.Style, back.ItemCount())
	}
}

func TestRenderTree(t *testing.T) {
	ctx := context.Background()
	doc, _ := GenerateLayout(ctx, Options{Scene: testScene()})

	artifacts, err := Render(ctx, doc, Options{Formats: []string{"tree"}, Detailed: true})
	if err != nil {
		t.Fatalf("Render(tree) error: %v", err)
	}
	if !strings.Contains(string(artifacts["tree"]), "<svg") {
		t.Error("tree artifact missing <svg> tag")
	}
}

func TestRunnerCaching(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)
	rec := observability.NewRecorder()
	rec.Install()

	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := Options{Scene: testScene(), Formats: []string{"svg", "json"}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run CacheInfo = %+v, want misses", first.CacheInfo)
	}
	if first.Stats.Items != 3 || first.Stats.Sections != 1 {
		t.Errorf("Stats = %+v, want 1 section, 3 items", first.Stats)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want hits", second.CacheInfo)
	}
	if string(second.Artifacts["svg"]) != string(first.Artifacts["svg"]) {
		t.Error("cached svg differs from rendered svg")
	}

	refreshed := opts
	refreshed.Refresh = true
	third, err := r.Execute(ctx, refreshed)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh CacheInfo = %+v, want misses", third.CacheInfo)
	}

	stats := rec.Snapshot()
	if stats.CacheHits["layout"] != 1 || stats.CacheHits["artifact"] != 2 {
		t.Errorf("cache hits = %v, want layout 1, artifact 2", stats.CacheHits)
	}
	if stats.Layouts != 2 {
		t.Errorf("layout passes = %d, want 2", stats.Layouts)
	}
}

// countingCache records the keys looked up in an inner cache.
type countingCache struct {
	cache.Cache
	gets []string
}

func (c *countingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.gets = append(c.gets, key)
	return c.Cache.Get(ctx, key)
}

func TestRunnerRefreshSkipsLookups(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := &countingCache{Cache: fc}
	r := NewRunner(c, nil, nil)

	opts := Options{Scene: testScene(), Formats: []string{"svg", "json"}}
	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}
	if len(c.gets) != 3 {
		t.Fatalf("lookups = %v, want layout + 2 artifacts", c.gets)
	}

	c.gets = nil
	opts.Refresh = true
	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.gets) != 0 {
		t.Errorf("refresh looked up %v, want none", c.gets)
	}
	if len(res.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(res.Artifacts))
	}
}

func TestRunnerPartialRenderCache(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)

	doc, err := r.Layout(ctx, Options{Scene: testScene()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(ctx, doc, Options{Formats: []string{"svg"}}); err != nil {
		t.Fatal(err)
	}

	artifacts, hit, err := r.RenderWithCacheInfo(ctx, doc, Options{Formats: []string{"svg", "dot"}})
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("RenderWithCacheInfo() should not report a hit when a format was rendered")
	}
	if len(artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(artifacts))
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Scene: testScene(), Formats: []string{"bmp"}})
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("Execute() error = %v, want INVALID_FORMAT", err)
	}
}
