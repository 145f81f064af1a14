package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
)

// Record is a stored layout document.
type Record struct {
	ID        string          `json:"id" bson:"_id"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	Layout    document.Layout `json:"layout" bson:"layout"`
}

// Store persists layout documents.
type Store interface {
	// Put stores doc under a new identifier and returns the record.
	Put(ctx context.Context, doc document.Layout) (Record, error)
	// Get returns the record with id, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (Record, error)
	// Delete removes the record with id, or returns a NOT_FOUND error.
	Delete(ctx context.Context, id string) error
	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// newRecord stamps doc with a fresh UUID and creation time.
func newRecord(doc document.Layout, now time.Time) Record {
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC().Truncate(time.Millisecond),
		Layout:    doc,
	}
}

func notFound(id string) error {
	return errs.New(errs.ErrCodeNotFound, "layout %s not found", id)
}
