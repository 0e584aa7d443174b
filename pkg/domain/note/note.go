// Package note is the example entity served by the API.
package note

import (
	"strings"
	"time"

	"github.com/amirasaad/yander/pkg/result"
	"github.com/google/uuid"
)

// CodeNotFound is the error code for a missing note.
const CodeNotFound = "Note.NotFound"

// Note is a titled piece of text.
type Note struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" bson:"_id"`
	Title     string    `json:"title" gorm:"not null" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (n *Note) GetID() uuid.UUID { return n.ID }

// New creates a note with a fresh identifier.
func New(title, body string) result.Of[*Note] {
	title = strings.TrimSpace(title)
	if title == "" {
		return result.FailureOf[*Note](titleRequired())
	}
	now := time.Now().UTC()
	return result.SuccessOf(&Note{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Edit replaces title and body.
func (n *Note) Edit(title, body string) result.Result {
	title = strings.TrimSpace(title)
	if title == "" {
		return result.Failure(titleRequired())
	}
	n.Title = title
	n.Body = body
	n.UpdatedAt = time.Now().UTC()
	return result.Success()
}

func titleRequired() *result.ValidationError {
	return result.NewValidationError("", result.FieldError{
		Field:   "title",
		Tag:     "required",
		Message: "title is required",
	})
}
