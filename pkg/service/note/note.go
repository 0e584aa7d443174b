// Package note provides the note use cases on top of the generic
// repository and unit of work.
//
// Domain failures come back as results; store faults come back as plain
// errors, untouched, and the caller decides how to surface them.
package note

import (
	"context"
	"log/slog"

	"github.com/amirasaad/yander/pkg/domain/note"
	"github.com/amirasaad/yander/pkg/repository"
	"github.com/amirasaad/yander/pkg/result"
	"github.com/google/uuid"
)

// Service serves one request scope: its repository and unit of work share
// a single store session.
type Service struct {
	notes  *repository.Repository[*note.Note, uuid.UUID]
	uow    *repository.UnitOfWork
	logger *slog.Logger
}

// New creates a Service over the notes collection and the unit of work
// of the same session.
func New(
	notes repository.Collection[*note.Note, uuid.UUID],
	uow *repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		notes:  repository.New[*note.Note, uuid.UUID](notes),
		uow:    uow,
		logger: logger,
	}
}

// Get returns the note or a NotFound failure.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (result.Of[*note.Note], error) {
	return repository.FindOrNotFound(ctx, s.notes, id, note.CodeNotFound)
}

// List returns every note.
func (s *Service) List(ctx context.Context) (result.Of[[]*note.Note], error) {
	notes, err := s.notes.GetAll(ctx)
	if err != nil {
		return result.Of[[]*note.Note]{}, err
	}
	if notes == nil {
		notes = []*note.Note{}
	}
	return result.SuccessOf(notes), nil
}

// Create stages a new note and commits it.
func (s *Service) Create(ctx context.Context, title, body string) (result.Of[*note.Note], error) {
	created := note.New(title, body)
	err := result.MatchOf(created,
		func(n *note.Note) error {
			s.notes.Add(n)
			if _, err := s.uow.SaveChanges(ctx); err != nil {
				s.logger.Error("failed to save note", "id", n.ID, "error", err)
				return err
			}
			s.logger.Info("note created", "id", n.ID)
			return nil
		},
		func(result.Classified) error { return nil },
	)
	if err != nil {
		return result.Of[*note.Note]{}, err
	}
	return created, nil
}

// Update edits an existing note and commits it.
func (s *Service) Update(ctx context.Context, id uuid.UUID, title, body string) (result.Of[*note.Note], error) {
	found, err := s.Get(ctx, id)
	if err != nil {
		return found, err
	}
	var saveErr error
	updated := result.Bind(found, func(n *note.Note) result.Of[*note.Note] {
		if edited := n.Edit(title, body); !edited.IsSuccess() {
			return result.FailureOf[*note.Note](edited.Err())
		}
		s.notes.Update(n)
		_, saveErr = s.uow.SaveChanges(ctx)
		return result.SuccessOf(n)
	})
	if saveErr != nil {
		s.logger.Error("failed to update note", "id", id, "error", saveErr)
		return result.Of[*note.Note]{}, saveErr
	}
	return updated, nil
}

// Delete removes a note and commits.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (result.Result, error) {
	found, err := s.Get(ctx, id)
	if err != nil {
		return result.Result{}, err
	}
	var saveErr error
	deleted := result.Map(found, func(n *note.Note) *note.Note {
		s.notes.Delete(n)
		_, saveErr = s.uow.SaveChanges(ctx)
		return n
	})
	if saveErr != nil {
		s.logger.Error("failed to delete note", "id", id, "error", saveErr)
		return result.Result{}, saveErr
	}
	if deleted.IsSuccess() {
		s.logger.Info("note deleted", "id", id)
	}
	return result.Unit(deleted), nil
}
