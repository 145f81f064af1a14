package layout

import (
	"testing"

	"github.com/matzehuels/mosaic/pkg/geom"
)

func TestResult_NilReceiver(t *testing.T) {
	var r *Result

	if _, ok := r.FrameForItem(Path(0, 0)); ok {
		t.Error("FrameForItem() on nil should report false")
	}
	if _, ok := r.FrameForSupplementary(KindHeader, 0); ok {
		t.Error("FrameForSupplementary() on nil should report false")
	}
	if _, ok := r.ContainerFrame(0); ok {
		t.Error("ContainerFrame() on nil should report false")
	}
	if got := r.FramesIntersecting(geom.NewRect(0, 0, 100, 100)); got != nil {
		t.Errorf("FramesIntersecting() on nil = %v", got)
	}
	if r.ContentSize() != (geom.Size{}) {
		t.Error("ContentSize() on nil should be zero")
	}
	if r.Tree().Len() != 0 || r.Sections() != nil || r.All() != nil {
		t.Error("Tree()/Sections()/All() on nil should be empty")
	}
}

func TestResult_OutOfRange(t *testing.T) {
	res := mustPrepare(t, New(Counts(300, 2)))

	for _, p := range []IndexPath{Path(0, 2), Path(1, 0), Path(-1, 0), Path(0, -1)} {
		if _, ok := res.FrameForItem(p); ok {
			t.Errorf("FrameForItem(%v) should report false", p)
		}
	}
	if _, ok := res.FrameForSupplementary(KindCell, 0); ok {
		t.Error("FrameForSupplementary(cell) should report false")
	}
	if _, ok := res.ContainerFrame(3); ok {
		t.Error("ContainerFrame(3) should report false")
	}
}

func TestResult_FramesIntersecting(t *testing.T) {
	// B S S B S S B S S packs as
	//   0 0 1
	//   0 0 2
	//   4 3 3
	//   5 3 3
	//   6 6 7
	//   6 6 8
	res := mustPrepare(t, New(Counts(300, 9)))

	tests := []struct {
		name string
		rect geom.Rect
		want []IndexPath
	}{
		{"bottom rows", geom.NewRect(0, 450, 300, 100), []IndexPath{Path(0, 6), Path(0, 7), Path(0, 8)}},
		{"middle", geom.NewRect(0, 250, 300, 100), []IndexPath{Path(0, 3), Path(0, 4), Path(0, 5)}},
		{"below content", geom.NewRect(0, 900, 300, 100), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := res.FramesIntersecting(tt.rect)
			if len(got) != len(tt.want) {
				t.Fatalf("FramesIntersecting() = %v, want paths %v", got, tt.want)
			}
			for i, a := range got {
				if a.Kind != KindCell || a.Path != tt.want[i] {
					t.Errorf("[%d] = %v %v, want cell %v", i, a.Kind, a.Path, tt.want[i])
				}
			}
		})
	}
}

func TestResult_FramesIntersectingSupplementary(t *testing.T) {
	res := mustPrepare(t, New(Counts(300, 3, 3),
		WithHeaderSize(func(int) (geom.Size, bool) { return geom.Size{Height: 40}, true }),
		WithFooterSize(func(int) (geom.Size, bool) { return geom.Size{Height: 20}, true }),
	))

	if got, _ := res.FrameForSupplementary(KindFooter, 1); got != geom.NewRect(0, 500, 300, 20) {
		t.Errorf("footer 1 = %v", got)
	}
	if want := (geom.Size{Width: 300, Height: 520}); res.ContentSize() != want {
		t.Errorf("ContentSize() = %v, want %v", res.ContentSize(), want)
	}

	got := res.FramesIntersecting(geom.NewRect(0, 230, 300, 80))
	want := []Attributes{
		{Kind: KindCell, Path: Path(1, 0), Frame: geom.NewRect(0, 300, 200, 200)},
		{Kind: KindCell, Path: Path(1, 1), Frame: geom.NewRect(200, 300, 100, 100)},
		{Kind: KindFooter, Path: Path(0, 0), Frame: geom.NewRect(0, 240, 300, 20)},
		{Kind: KindHeader, Path: Path(1, 0), Frame: geom.NewRect(0, 260, 300, 40)},
	}
	if len(got) != len(want) {
		t.Fatalf("FramesIntersecting() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestResult_All(t *testing.T) {
	res := mustPrepare(t, New(Counts(300, 2),
		WithFooterSize(func(int) (geom.Size, bool) { return geom.Size{Height: 10}, true }),
	))
	all := res.All()
	if len(all) != 3 {
		t.Fatalf("All() len = %d, want 3", len(all))
	}
	if all[2].Kind != KindFooter {
		t.Errorf("All()[2].Kind = %v, want footer", all[2].Kind)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindCell, KindHeader, KindFooter} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("sidebar"); err == nil {
		t.Error("ParseKind(sidebar) should fail")
	}
}
