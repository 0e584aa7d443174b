// Package gormstore implements the repository store handle on top of GORM.
//
// A Session queues writes in memory and applies them in one database
// transaction on Commit. Reads go straight to the database and do not see
// staged writes.
package gormstore

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

type operation func(tx *gorm.DB) (int64, error)

// Session is one unit-of-work scope over a *gorm.DB. It is not safe for
// concurrent use; create one per request.
type Session struct {
	db      *gorm.DB
	pending []operation
	logger  *slog.Logger
}

// NewSession creates a session. The caller keeps ownership of db.
func NewSession(db *gorm.DB) *Session {
	return &Session{db: db, logger: slog.Default().With("store", "gorm")}
}

func (s *Session) stage(op operation) {
	s.pending = append(s.pending, op)
}

// Pending returns the number of staged operations.
func (s *Session) Pending() int { return len(s.pending) }

// Commit applies every staged operation in order inside a single
// transaction and returns the total number of affected rows. On failure the
// transaction is rolled back, the staged operations are kept and the error
// is returned as GORM reported it.
func (s *Session) Commit(ctx context.Context) (int, error) {
	if len(s.pending) == 0 {
		return 0, nil
	}
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range s.pending {
			n, err := op(tx)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		s.logger.Debug("commit failed", "operations", len(s.pending), "error", err)
		return 0, err
	}
	s.logger.Debug("commit succeeded", "operations", len(s.pending), "affected", affected)
	s.pending = nil
	return int(affected), nil
}

// Set is the collection of one entity type T, addressed by ID.
type Set[T any, ID comparable] struct {
	session *Session
	pk      string
}

// SetOption configures a Set.
type SetOption func(*setConfig)

type setConfig struct {
	pk string
}

// WithPrimaryKey overrides the identifier column (default "id").
func WithPrimaryKey(column string) SetOption {
	return func(c *setConfig) { c.pk = column }
}

// NewSet binds a collection of T to session.
func NewSet[T any, ID comparable](session *Session, opts ...SetOption) *Set[T, ID] {
	cfg := setConfig{pk: "id"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Set[T, ID]{session: session, pk: cfg.pk}
}

// Find loads the row with the given id.
func (s *Set[T, ID]) Find(ctx context.Context, id ID) (*T, bool, error) {
	var entity T
	err := s.session.db.WithContext(ctx).Where(s.pk+" = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &entity, true, nil
}

// List loads every row of the table.
func (s *Set[T, ID]) List(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := s.session.db.WithContext(ctx).Find(&entities).Error
	return entities, err
}

func (s *Set[T, ID]) Add(entity *T) {
	s.session.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(entity)
		return res.RowsAffected, res.Error
	})
}

// Update writes every column of entity. A row that no longer exists is not
// recreated; it contributes zero to the affected count.
func (s *Set[T, ID]) Update(entity *T) {
	s.session.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Model(entity).Select("*").Updates(entity)
		return res.RowsAffected, res.Error
	})
}

func (s *Set[T, ID]) Remove(entity *T) {
	s.session.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Delete(entity)
		return res.RowsAffected, res.Error
	})
}
