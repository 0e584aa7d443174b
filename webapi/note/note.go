package note

import (
	"github.com/amirasaad/yander/pkg/app"
	"github.com/amirasaad/yander/pkg/config"
	"github.com/amirasaad/yander/pkg/domain/note"
	"github.com/amirasaad/yander/pkg/middleware"
	"github.com/amirasaad/yander/pkg/result"
	"github.com/amirasaad/yander/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the note endpoints. Reads are public; writes require a
// bearer token when a JWT secret is configured.
func Routes(app *fiber.App, notes app.NoteScope, cfg *config.App) {
	protected := middleware.JwtProtected(jwtSecret(cfg))
	app.Get("/notes", ListNotes(notes))
	app.Get("/notes/:id", GetNote(notes))
	app.Post("/notes", protected, CreateNote(notes))
	app.Put("/notes/:id", protected, UpdateNote(notes))
	app.Delete("/notes/:id", protected, DeleteNote(notes))
}

func jwtSecret(cfg *config.App) string {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.Jwt == nil {
		return ""
	}
	return cfg.Auth.Jwt.Secret
}

// parseID reads the :id path parameter. On failure the 400 response has
// already been written.
func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = common.Failure(c, result.BadRequest("Note.InvalidID", "Note ID must be a valid UUID."))
		return uuid.Nil, false
	}
	return id, true
}

// ListNotes returns a Fiber handler listing every note.
// @Summary List notes
// @Tags notes
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} common.ProblemDetails
// @Router /notes [get]
func ListNotes(notes app.NoteScope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := notes().List(c.Context())
		if err != nil {
			return common.StoreFault(c, err)
		}
		return common.Value(c, r)
	}
}

// GetNote returns a Fiber handler for retrieving a note by ID.
// @Summary Get note by ID
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} note.Note
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notes/{id} [get]
func GetNote(notes app.NoteScope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return nil
		}
		r, err := notes().Get(c.Context(), id)
		if err != nil {
			return common.StoreFault(c, err)
		}
		return common.Value(c, r)
	}
}

// CreateNote returns a Fiber handler creating a note.
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param request body NoteRequest true "Note data"
// @Success 201 {object} note.Note
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /notes [post]
// @Security Bearer
func CreateNote(notes app.NoteScope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, _ := common.BindAndValidate[NoteRequest](c)
		if input == nil {
			return nil // error response already written
		}
		r, err := notes().Create(c.Context(), input.Title, input.Body)
		if err != nil {
			return common.StoreFault(c, err)
		}
		return result.MatchOf(r,
			func(n *note.Note) error { return c.Status(fiber.StatusCreated).JSON(n) },
			func(e result.Classified) error { return common.Failure(c, e) },
		)
	}
}

// UpdateNote returns a Fiber handler editing a note.
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param request body NoteRequest true "Note data"
// @Success 200 {object} note.Note
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notes/{id} [put]
// @Security Bearer
func UpdateNote(notes app.NoteScope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return nil
		}
		input, _ := common.BindAndValidate[NoteRequest](c)
		if input == nil {
			return nil
		}
		r, err := notes().Update(c.Context(), id, input.Title, input.Body)
		if err != nil {
			return common.StoreFault(c, err)
		}
		return common.Value(c, r)
	}
}

// DeleteNote returns a Fiber handler removing a note.
// @Summary Delete a note
// @Tags notes
// @Param id path string true "Note ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notes/{id} [delete]
// @Security Bearer
func DeleteNote(notes app.NoteScope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return nil
		}
		r, err := notes().Delete(c.Context(), id)
		if err != nil {
			return common.StoreFault(c, err)
		}
		return common.Outcome(c, r)
	}
}
