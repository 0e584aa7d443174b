// Package mongostore implements the repository store handle on MongoDB.
//
// Writes are staged as bulk write models and committed inside a
// multi-document transaction, which requires a replica set or sharded
// cluster. Documents are addressed by their _id field.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/yander/pkg/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type write struct {
	collection string
	model      mongo.WriteModel
}

// Session is one unit-of-work scope over a database. Not safe for
// concurrent use.
type Session struct {
	db      *mongo.Database
	pending []write
	logger  *slog.Logger
}

// NewSession creates a session on db. The client is not owned.
func NewSession(db *mongo.Database) *Session {
	return &Session{db: db, logger: slog.Default().With("store", "mongo", "database", db.Name())}
}

// Pending returns the number of staged writes.
func (s *Session) Pending() int { return len(s.pending) }

// Commit writes every staged model inside one transaction. Consecutive
// writes to the same collection share a single ordered BulkWrite.
func (s *Session) Commit(ctx context.Context) (int, error) {
	if len(s.pending) == 0 {
		return 0, nil
	}
	sess, err := s.db.Client().StartSession()
	if err != nil {
		return 0, err
	}
	defer sess.EndSession(ctx)

	affected, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var total int64
		for _, batch := range s.batches() {
			res, err := s.db.Collection(batch.collection).BulkWrite(sc, batch.models, options.BulkWrite().SetOrdered(true))
			if err != nil {
				return nil, err
			}
			total += res.InsertedCount + res.ModifiedCount + res.DeletedCount + res.UpsertedCount
		}
		return total, nil
	})
	if err != nil {
		s.logger.Debug("commit failed", "writes", len(s.pending), "error", err)
		return 0, err
	}
	s.pending = nil
	return int(affected.(int64)), nil
}

type batch struct {
	collection string
	models     []mongo.WriteModel
}

func (s *Session) batches() []batch {
	var out []batch
	for _, w := range s.pending {
		if n := len(out); n > 0 && out[n-1].collection == w.collection {
			out[n-1].models = append(out[n-1].models, w.model)
			continue
		}
		out = append(out, batch{collection: w.collection, models: []mongo.WriteModel{w.model}})
	}
	return out
}

// Collection is the document collection of T. PT is *T and must expose the
// identifier used as _id.
type Collection[T any, ID comparable, PT interface {
	*T
	repository.Entity[ID]
}] struct {
	session *Session
	name    string
}

// NewCollection binds the named collection to session.
func NewCollection[T any, ID comparable, PT interface {
	*T
	repository.Entity[ID]
}](session *Session, name string) *Collection[T, ID, PT] {
	return &Collection[T, ID, PT]{session: session, name: name}
}

func (c *Collection[T, ID, PT]) coll() *mongo.Collection {
	return c.session.db.Collection(c.name)
}

// Find loads the document whose _id equals id.
func (c *Collection[T, ID, PT]) Find(ctx context.Context, id ID) (PT, bool, error) {
	var doc T
	err := c.coll().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return PT(&doc), true, nil
}

// List loads every document of the collection.
func (c *Collection[T, ID, PT]) List(ctx context.Context) ([]PT, error) {
	cur, err := c.coll().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	out := make([]PT, len(docs))
	for i := range docs {
		out[i] = PT(&docs[i])
	}
	return out, nil
}

func (c *Collection[T, ID, PT]) Add(entity PT) {
	c.stage(mongo.NewInsertOneModel().SetDocument(entity))
}

func (c *Collection[T, ID, PT]) Update(entity PT) {
	c.stage(mongo.NewReplaceOneModel().
		SetFilter(bson.D{{Key: "_id", Value: entity.GetID()}}).
		SetReplacement(entity))
}

func (c *Collection[T, ID, PT]) Remove(entity PT) {
	c.stage(mongo.NewDeleteOneModel().SetFilter(bson.D{{Key: "_id", Value: entity.GetID()}}))
}

func (c *Collection[T, ID, PT]) stage(model mongo.WriteModel) {
	c.session.pending = append(c.session.pending, write{collection: c.name, model: model})
}
