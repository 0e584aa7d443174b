// Package mocks holds testify doubles for the store handle interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Collection is a mock repository.Collection.
type Collection[E any, ID comparable] struct {
	mock.Mock
}

func (m *Collection[E, ID]) Find(ctx context.Context, id ID) (E, bool, error) {
	args := m.Called(ctx, id)
	var entity E
	if v := args.Get(0); v != nil {
		entity = v.(E)
	}
	return entity, args.Bool(1), args.Error(2)
}

func (m *Collection[E, ID]) Add(entity E)    { m.Called(entity) }
func (m *Collection[E, ID]) Update(entity E) { m.Called(entity) }
func (m *Collection[E, ID]) Remove(entity E) { m.Called(entity) }

func (m *Collection[E, ID]) List(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	var entities []E
	if v := args.Get(0); v != nil {
		entities = v.([]E)
	}
	return entities, args.Error(1)
}

// Session is a mock repository.Session.
type Session struct {
	mock.Mock
}

func (m *Session) Commit(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *Session) Pending() int {
	args := m.Called()
	return args.Int(0)
}
