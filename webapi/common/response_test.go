package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/yander/pkg/result"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func serve(t *testing.T, h fiber.Handler) *http.Response {
	t.Helper()
	app := fiber.New()
	app.All("/test", h)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	return resp
}

func decodeProblem(t *testing.T, resp *http.Response) ProblemDetails {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, ProblemContentType, resp.Header.Get(fiber.HeaderContentType))
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

func TestValue_OK(t *testing.T) {
	resp := serve(t, func(c *fiber.Ctx) error {
		return Value(c, result.SuccessOf(42))
	})
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "42", string(body))
}

func TestValue_Conflict(t *testing.T) {
	resp := serve(t, func(c *fiber.Ctx) error {
		return Value(c, result.FailureOf[int](result.Conflict("Conflict", "Data conflict occurred.")))
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	pd := decodeProblem(t, resp)
	assert.Equal(t, "Conflict", pd.Code)
	assert.Equal(t, "Data conflict occurred.", pd.Detail)
	assert.Equal(t, "/test", pd.Instance)
}

func TestOutcome(t *testing.T) {
	resp := serve(t, func(c *fiber.Ctx) error { return Outcome(c, result.Success()) })
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = serve(t, func(c *fiber.Ctx) error {
		return Outcome(c, result.Failure(result.Unauthorized("Auth", "who are you")))
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestFailure_ServerErrorDoesNotLeak(t *testing.T) {
	resp := serve(t, func(c *fiber.Ctx) error {
		return Failure(c, result.MustError("Internal", "pq: relation notes does not exist", 0))
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	pd := decodeProblem(t, resp)
	assert.Equal(t, "An error occurred", pd.Detail)
	assert.Empty(t, pd.Code)
}

func TestFailure_Validation(t *testing.T) {
	resp := serve(t, func(c *fiber.Ctx) error {
		return Failure(c, result.NewValidationError("", result.FieldError{Field: "title", Message: "title is required"}))
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	pd := decodeProblem(t, resp)
	assert.Equal(t, result.ValidationCode, pd.Code)
	assert.NotNil(t, pd.Errors)
}

func TestStoreFault(t *testing.T) {
	resp := serve(t, func(c *fiber.Ctx) error {
		return StoreFault(c, errors.Join(errors.New("insert"), gorm.ErrDuplicatedKey))
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = serve(t, func(c *fiber.Ctx) error {
		return StoreFault(c, errors.New("dial tcp 10.0.0.1:5432: i/o timeout"))
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	pd := decodeProblem(t, resp)
	assert.NotContains(t, pd.Detail, "10.0.0.1")
}

type createInput struct {
	Title string `json:"title" validate:"required,max=10"`
}

func TestBindAndValidate(t *testing.T) {
	handler := func(c *fiber.Ctx) error {
		input, err := BindAndValidate[createInput](c)
		if err != nil {
			return nil
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	}

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"title":"ok"}`, http.StatusCreated},
		{"malformed", `{"title":`, http.StatusBadRequest},
		{"invalid", `{"title":""}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/", handler)
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
