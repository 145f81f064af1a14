package storage

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
)

// Memory is an in-process Store.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record), now: time.Now}
}

func (m *Memory) Put(_ context.Context, doc document.Layout) (Record, error) {
	if err := doc.Validate(); err != nil {
		return Record{}, err
	}
	rec := newRecord(doc, m.now())

	m.mu.Lock()
	m.records[rec.ID] = rec
	m.mu.Unlock()
	return rec, nil
}

func (m *Memory) Get(_ context.Context, id string) (Record, error) {
	if err := errs.ValidateLayoutID(id); err != nil {
		return Record{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return Record{}, notFound(id)
	}
	return rec, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	if err := errs.ValidateLayoutID(id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return notFound(id)
	}
	delete(m.records, id)
	return nil
}

func (m *Memory) List(_ context.Context, limit int) ([]Record, error) {
	m.mu.RLock()
	out := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b Record) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
