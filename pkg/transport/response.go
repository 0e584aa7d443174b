// Package transport maps outcomes from package result onto protocol
// neutral responses. Rendering them to the wire is left to the caller
// (see webapi/common for the Fiber renderer).
//
// Besides the error variants and OK, the package adds NoContent: FromResult
// uses it for a successful outcome that carries no value.
package transport

import (
	"net/http"

	"github.com/amirasaad/yander/pkg/result"
)

// Kind identifies the response variant.
type Kind int

const (
	KindOK Kind = iota
	KindNoContent
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnprocessable
	KindServerError
)

var kindNames = map[Kind]string{
	KindOK:            "ok",
	KindNoContent:     "no-content",
	KindBadRequest:    "bad-request",
	KindUnauthorized:  "unauthorized",
	KindForbidden:     "forbidden",
	KindNotFound:      "not-found",
	KindConflict:      "conflict",
	KindUnprocessable: "unprocessable-entity",
	KindServerError:   "server-error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Response is a rendered outcome. Body is nil for variants without a body;
// Message is set only for server errors.
type Response struct {
	Kind    Kind
	Status  int
	Body    any
	Message string
}

// HasBody reports whether the variant carries a body.
func (r Response) HasBody() bool { return r.Body != nil }

func OK(body any) Response {
	return Response{Kind: KindOK, Status: http.StatusOK, Body: body}
}

func NoContent() Response {
	return Response{Kind: KindNoContent, Status: http.StatusNoContent}
}

func BadRequest(err result.Classified) Response {
	return Response{Kind: KindBadRequest, Status: http.StatusBadRequest, Body: err}
}

func Unauthorized() Response {
	return Response{Kind: KindUnauthorized, Status: http.StatusUnauthorized}
}

func Forbidden() Response {
	return Response{Kind: KindForbidden, Status: http.StatusForbidden}
}

func NotFound(err result.Classified) Response {
	return Response{Kind: KindNotFound, Status: http.StatusNotFound, Body: err}
}

func Conflict(err result.Classified) Response {
	return Response{Kind: KindConflict, Status: http.StatusConflict, Body: err}
}

func UnprocessableEntity(body any) Response {
	return Response{Kind: KindUnprocessable, Status: http.StatusUnprocessableEntity, Body: body}
}

// ServerError is the generic failure. Message must be safe to show clients.
func ServerError(message string) Response {
	return Response{Kind: KindServerError, Status: http.StatusInternalServerError, Message: message}
}
