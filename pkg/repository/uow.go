package repository

import (
	"context"
)

// Committer is the commit side of a store session.
type Committer interface {
	// Commit persists every staged change atomically and returns the
	// number of affected records.
	Commit(ctx context.Context) (int, error)
}

// UnitOfWork is the commit boundary for one logical scope, typically a
// request. It is a pass-through: faults raised on commit are returned
// exactly as the store produced them so the caller keeps control of retry
// policy.
type UnitOfWork struct {
	session Committer
}

// NewUnitOfWork binds a unit of work to session. The session is not owned.
func NewUnitOfWork(session Committer) *UnitOfWork {
	return &UnitOfWork{session: session}
}

// SaveChanges commits what the repositories sharing the session staged.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	return u.session.Commit(ctx)
}

// Session is a store handle that hands out collections and commits them.
// Implementations live under infra/store.
type Session interface {
	Committer
	Pending() int
}

// Scope groups the session used by one logical transaction with its unit
// of work. The composition root creates one per request and drops it when
// the request ends; the scope never closes the underlying connection.
type Scope[S Session] struct {
	Session S
	UoW     *UnitOfWork
}

// NewScope wraps session in a Scope.
func NewScope[S Session](session S) *Scope[S] {
	return &Scope[S]{Session: session, UoW: NewUnitOfWork(session)}
}
