// Package common renders transport responses with Fiber.
package common

import (
	"github.com/amirasaad/yander/infra/store"
	"github.com/amirasaad/yander/pkg/result"
	"github.com/amirasaad/yander/pkg/transport"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Code     string `json:"code,omitempty"`     // Machine-readable error code
	Errors   any    `json:"errors,omitempty"`   // Field-level details for validation failures
}

// ProblemContentType is the media type of ProblemDetails bodies.
const ProblemContentType = "application/problem+json"

var validate = validator.New()

// Render writes resp to the wire. Bodies that are classified errors become
// problem details; other bodies are written as JSON.
func Render(c *fiber.Ctx, resp transport.Response) error {
	switch resp.Kind {
	case transport.KindNoContent, transport.KindUnauthorized, transport.KindForbidden:
		c.Status(resp.Status)
		return nil
	case transport.KindServerError:
		return problem(c, ProblemDetails{
			Title:  "Internal Server Error",
			Status: resp.Status,
			Detail: resp.Message,
		})
	}

	switch body := resp.Body.(type) {
	case *result.ValidationError:
		return problem(c, ProblemDetails{
			Title:  "Validation failed",
			Status: resp.Status,
			Detail: body.Message(),
			Code:   body.Code(),
			Errors: body.Fields(),
		})
	case result.Classified:
		return problem(c, ProblemDetails{
			Title:  utils.StatusMessage(resp.Status),
			Status: resp.Status,
			Detail: body.Message(),
			Code:   body.Code(),
		})
	}
	return c.Status(resp.Status).JSON(resp.Body)
}

func problem(c *fiber.Ctx, pd ProblemDetails) error {
	pd.Type = "about:blank"
	pd.Instance = c.OriginalURL()
	return c.Status(pd.Status).JSON(pd, ProblemContentType)
}

// HTTPError renders an error raised by Fiber itself, such as an unknown
// route or an exceeded rate limit.
func HTTPError(c *fiber.Ctx, err *fiber.Error) error {
	return problem(c, ProblemDetails{
		Title:  utils.StatusMessage(err.Code),
		Status: err.Code,
		Detail: err.Message,
	})
}

// Value renders a value-carrying result.
func Value[T any](c *fiber.Ctx, r result.Of[T]) error {
	return Render(c, transport.FromValue(r))
}

// Outcome renders a valueless result.
func Outcome(c *fiber.Ctx, r result.Result) error {
	return Render(c, transport.FromResult(r))
}

// Failure renders a classified error.
func Failure(c *fiber.Ctx, err result.Classified) error {
	return Render(c, transport.FromError(err))
}

// StoreFault renders a store fault after classifying it. The fault itself
// is never shown to the client.
func StoreFault(c *fiber.Ctx, err error) error {
	return Failure(c, store.Classify(err))
}

// BindAndValidate parses the request body and validates it. On failure the
// error response has already been written and the handler should return nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = Failure(c, result.BadRequest("Request.Malformed", "The request body could not be parsed."))
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		_ = Failure(c, result.FromValidator(err))
		return nil, err
	}
	return &input, nil
}
