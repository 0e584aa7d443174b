package transport

import (
	"net/http"

	"github.com/amirasaad/yander/pkg/result"
)

const (
	// MsgError is rendered for generic errors without a recognized status.
	MsgError = "An error occurred"
	// MsgUnexpected is rendered for error shapes the mapper does not know.
	MsgUnexpected = "An unexpected error occurred"
)

// errorResponders maps a recognized status hint to its response variant.
var errorResponders = map[int]func(result.Classified) Response{
	http.StatusBadRequest:          BadRequest,
	http.StatusUnauthorized:        func(result.Classified) Response { return Unauthorized() },
	http.StatusForbidden:           func(result.Classified) Response { return Forbidden() },
	http.StatusNotFound:            NotFound,
	http.StatusConflict:            Conflict,
	http.StatusUnprocessableEntity: func(err result.Classified) Response { return UnprocessableEntity(err) },
}

// Recognized reports whether status has a dedicated response variant.
func Recognized(status int) bool {
	_, ok := errorResponders[status]
	return ok
}

// FromError picks the response for err. It never panics; a nil err is
// treated as an unknown shape.
func FromError(err result.Classified) Response {
	switch e := err.(type) {
	case *result.Error:
		if e == nil {
			return ServerError(MsgUnexpected)
		}
		if status, ok := e.StatusCode(); ok {
			if respond, found := errorResponders[status]; found {
				return respond(e)
			}
		}
		return ServerError(MsgError)
	case *result.ValidationError:
		if e == nil {
			return ServerError(MsgUnexpected)
		}
		return UnprocessableEntity(e)
	default:
		return ServerError(MsgUnexpected)
	}
}

// FromResult renders a valueless outcome: success has no body.
func FromResult(r result.Result) Response {
	return result.Match(r, NoContent, FromError)
}

// FromValue renders a success as OK carrying the value.
func FromValue[T any](r result.Of[T]) Response {
	return result.MatchOf(r,
		func(v T) Response { return OK(v) },
		FromError,
	)
}
