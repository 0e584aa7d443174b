// Package repository provides a generic CRUD façade over a store handle and
// a unit of work that commits what the repositories staged.
//
// Repositories never talk to a database directly. They are bound to a
// Collection of one entity type; the Collection and the Committer handed to
// the UnitOfWork must come from the same store session so that a single
// SaveChanges persists everything staged through the repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/yander/pkg/result"
)

// Entity is anything persisted with a stable identifier.
type Entity[ID comparable] interface {
	GetID() ID
}

// Collection is the store handle for one entity type. Add, Update and
// Remove only stage changes; nothing is written until the owning session
// commits.
type Collection[E any, ID comparable] interface {
	Find(ctx context.Context, id ID) (E, bool, error)
	Add(entity E)
	Update(entity E)
	Remove(entity E)
	List(ctx context.Context) ([]E, error)
}

// Repository is a generic CRUD façade over a Collection.
// It performs no locking and does not translate store faults.
type Repository[E Entity[ID], ID comparable] struct {
	coll Collection[E, ID]
}

// New binds a repository to coll for its lifetime.
func New[E Entity[ID], ID comparable](coll Collection[E, ID]) *Repository[E, ID] {
	return &Repository[E, ID]{coll: coll}
}

// GetByID returns the entity with the given id. A missing entity is
// reported with found == false and a nil error; absence is not a failure
// at this layer.
func (r *Repository[E, ID]) GetByID(ctx context.Context, id ID) (entity E, found bool, err error) {
	return r.coll.Find(ctx, id)
}

// Add stages an insertion.
func (r *Repository[E, ID]) Add(entity E) { r.coll.Add(entity) }

// Update stages a modification.
func (r *Repository[E, ID]) Update(entity E) { r.coll.Update(entity) }

// Delete stages a removal.
func (r *Repository[E, ID]) Delete(entity E) { r.coll.Remove(entity) }

// GetAll materializes every entity in the collection. The result is not
// paged, so callers must only use it on collections known to stay small.
func (r *Repository[E, ID]) GetAll(ctx context.Context) ([]E, error) {
	return r.coll.List(ctx)
}

// FindOrNotFound is for callers that treat absence as a failure: a missing
// entity becomes a 404 result carrying code. Store faults are still
// returned as errors, untouched.
func FindOrNotFound[E Entity[ID], ID comparable](
	ctx context.Context,
	repo *Repository[E, ID],
	id ID,
	code string,
) (result.Of[E], error) {
	entity, found, err := repo.GetByID(ctx, id)
	if err != nil {
		return result.Of[E]{}, err
	}
	if !found {
		return result.FailureOf[E](result.NotFound(code, fmt.Sprintf("no entity with id %v", id))), nil
	}
	return result.SuccessOf(entity), nil
}
