package note

// NoteRequest is the payload for creating or editing a note.
type NoteRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"max=10000"`
}
