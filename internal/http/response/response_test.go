package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	resp := OK(map[string]any{"x": 1}, "done")
	assert.True(t, resp.Success)
	assert.Equal(t, "done", resp.Message)
	assert.Empty(t, resp.Error)
	assert.Zero(t, resp.Code)
}

func TestError(t *testing.T) {
	resp := Error(CodeNotFound, "plan not found")
	assert.False(t, resp.Success)
	assert.Equal(t, CodeNotFound, resp.Code)
	assert.Equal(t, "plan not found", resp.Error)
}

func TestValidationError(t *testing.T) {
	type req struct {
		Name      string `validate:"required"`
		Email     string `validate:"required,email"`
		StartDate string `validate:"required,datetime=2006-01-02"`
	}
	err := validator.New().Struct(req{Email: "not-an-email", StartDate: "garbage"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.False(t, resp.Success)
	assert.Equal(t, CodeBadRequest, resp.Code)
	assert.Contains(t, resp.Error, "field Name is a required field")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field StartDate must be a date in format 2006-01-02")
}
