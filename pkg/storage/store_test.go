package storage

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
)

func sampleLayout(name string) document.Layout {
	return document.Layout{
		Name:      name,
		Viewport:  300,
		GridWidth: 3,
		Width:     300,
		Height:    100,
		Sections: []document.Section{{
			Index: 0,
			Rows:  1,
			Frame: geom.NewRect(0, 0, 100, 100),
			Cells: []document.Cell{{
				Item:  0,
				Size:  "small_square",
				Grid:  grid.R(0, 0, 1, 1),
				Frame: geom.NewRect(0, 0, 100, 100),
			}},
		}},
	}
}

func TestMemoryPutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	defer s.Close()

	rec, err := s.Put(ctx, sampleLayout("a"))
	if err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := errs.ValidateLayoutID(rec.ID); err != nil {
		t.Errorf("Put() id %q is not a uuid: %v", rec.ID, err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Layout.Name != "a" || got.Layout.ItemCount() != 1 {
		t.Errorf("Get() = %+v, want stored layout", got.Layout)
	}

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("Get() after Delete error = %v, want NOT_FOUND", err)
	}
	if err := s.Delete(ctx, rec.ID); !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("Delete() twice error = %v, want NOT_FOUND", err)
	}
}

func TestMemoryInvalid(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, err := s.Get(ctx, "not-a-uuid"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("Get() error = %v, want INVALID_INPUT", err)
	}
	bad := sampleLayout("bad")
	bad.Height = -1
	if _, err := s.Put(ctx, bad); !errs.IsInvalid(err) {
		t.Errorf("Put() error = %v, want invalid", err)
	}
}

func TestMemoryList(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.Put(ctx, sampleLayout(name)); err != nil {
			t.Fatal(err)
		}
	}

	all, _ := s.List(ctx, 0)
	if len(all) != 3 {
		t.Fatalf("List(0) len = %d, want 3", len(all))
	}
	if all[0].Layout.Name != "third" || all[2].Layout.Name != "first" {
		t.Errorf("List() order = %s,%s,%s, want newest first",
			all[0].Layout.Name, all[1].Layout.Name, all[2].Layout.Name)
	}

	two, _ := s.List(ctx, 2)
	if len(two) != 2 {
		t.Errorf("List(2) len = %d, want 2", len(two))
	}
}

func TestRecordBSON(t *testing.T) {
	rec := newRecord(sampleLayout("bson"), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	raw, err := bson.Marshal(rec)
	if err != nil {
		t.Fatalf("bson.Marshal() error: %v", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["_id"] != rec.ID {
		t.Errorf("_id = %v, want %v", fields["_id"], rec.ID)
	}

	var back Record
	if err := bson.Unmarshal(raw, &back); err != nil {
		t.Fatalf("bson.Unmarshal() error: %v", err)
	}
	if !back.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", back.CreatedAt, rec.CreatedAt)
	}
	c, ok := back.Layout.Cell(0, 0)
	if !ok || c.Grid != grid.R(0, 0, 1, 1) || c.Frame != geom.NewRect(0, 0, 100, 100) {
		t.Errorf("Cell(0,0) = %+v, want round-tripped cell", c)
	}
}
