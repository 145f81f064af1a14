package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
)

// DefaultCollection is the collection layouts are stored in.
const DefaultCollection = "layouts"

// Mongo is a Store backed by a MongoDB collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// ConnectMongo connects to uri, pings the primary and returns a store over
// database db.
func ConnectMongo(ctx context.Context, uri, db string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewMongo(client, db), nil
}

// NewMongo wraps an existing client.
func NewMongo(client *mongo.Client, db string) *Mongo {
	return &Mongo{
		client: client,
		coll:   client.Database(db).Collection(DefaultCollection),
	}
}

func (m *Mongo) Put(ctx context.Context, doc document.Layout) (Record, error) {
	if err := doc.Validate(); err != nil {
		return Record{}, err
	}
	rec := newRecord(doc, time.Now())
	if _, err := m.coll.InsertOne(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("insert layout: %w", err)
	}
	return rec, nil
}

func (m *Mongo) Get(ctx context.Context, id string) (Record, error) {
	if err := errs.ValidateLayoutID(id); err != nil {
		return Record{}, err
	}
	var rec Record
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("find layout: %w", err)
	}
	return rec, nil
}

func (m *Mongo) Delete(ctx context.Context, id string) error {
	if err := errs.ValidateLayoutID(id); err != nil {
		return err
	}
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (m *Mongo) List(ctx context.Context, limit int) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := m.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	var out []Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode layouts: %w", err)
	}
	return out, nil
}

// Close disconnects the client.
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

var _ Store = (*Mongo)(nil)
