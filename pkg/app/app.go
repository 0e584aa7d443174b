// Package app holds the dependencies shared by the HTTP layer.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/yander/pkg/config"
	notesvc "github.com/amirasaad/yander/pkg/service/note"
)

// NoteScope opens a fresh store session and returns the note service bound
// to it. Call it once per request.
type NoteScope func() *notesvc.Service

// Deps contains everything the web layer needs.
type Deps struct {
	Logger *slog.Logger
	Notes  NoteScope
	// Close releases the store connection.
	Close func(ctx context.Context) error
}

type App struct {
	Deps   *Deps
	Config *config.App
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
	}
}
