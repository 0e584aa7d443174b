package result

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		message string
		wantErr error
	}{
		{name: "valid", code: "Conflict", message: "Data conflict occurred."},
		{name: "empty code", code: "", message: "msg", wantErr: ErrEmptyCode},
		{name: "empty message", code: "code", message: "", wantErr: ErrEmptyMessage},
		{name: "both empty", wantErr: ErrEmptyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := NewError(tt.code, tt.message)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)

				e, err = NewErrorWithStatus(tt.code, tt.message, http.StatusConflict)
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
				assert.Panics(t, func() { MustError(tt.code, tt.message, 0) })
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, e.Code())
			assert.Equal(t, tt.message, e.Message())
			_, ok := e.StatusCode()
			assert.False(t, ok)
		})
	}
}

func TestNewErrorWithStatus(t *testing.T) {
	t.Parallel()
	e, err := NewErrorWithStatus("Conflict", "Data conflict occurred.", http.StatusConflict)
	require.NoError(t, err)
	status, ok := e.StatusCode()
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Conflict: Data conflict occurred.", e.Error())
}

func TestError_Is(t *testing.T) {
	t.Parallel()
	a := NotFound("Note.NotFound", "first")
	b := NotFound("Note.NotFound", "second")
	c := NotFound("Other", "first")
	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
	assert.NotErrorIs(t, a, errors.New("Note.NotFound: first"))
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()
	cases := map[int]*Error{
		http.StatusNotFound:     NotFound("a", "b"),
		http.StatusConflict:     Conflict("a", "b"),
		http.StatusBadRequest:   BadRequest("a", "b"),
		http.StatusUnauthorized: Unauthorized("a", "b"),
		http.StatusForbidden:    Forbidden("a", "b"),
	}
	for want, e := range cases {
		got, ok := e.StatusCode()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestError_MarshalJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Conflict("Conflict", "Data conflict occurred."))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"Conflict","message":"Data conflict occurred.","status":409}`, string(b))

	b, err = json.Marshal(MustError("Plain", "no status", 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"Plain","message":"no status"}`, string(b))
}

type createNote struct {
	Title string `validate:"required,max=5"`
	Body  string `validate:"required"`
}

func TestFromValidator(t *testing.T) {
	t.Parallel()
	err := validator.New().Struct(createNote{Title: "too long"})
	require.Error(t, err)

	v := FromValidator(err)
	require.NotNil(t, v)
	assert.Equal(t, ValidationCode, v.Code())

	fields := v.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Title", fields[0].Field)
	assert.Equal(t, "max", fields[0].Tag)
	assert.Equal(t, "5", fields[0].Param)
	assert.Equal(t, "Body", fields[1].Field)
	assert.Equal(t, "Body is required", fields[1].Message)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"field":"Title"`)
}

func TestFromValidator_Other(t *testing.T) {
	t.Parallel()
	assert.Nil(t, FromValidator(nil))

	v := FromValidator(errors.New("body is not json"))
	assert.Equal(t, "body is not json", v.Message())
	assert.Empty(t, v.Fields())
	assert.Equal(t, "Validation: body is not json", v.Error())
}
