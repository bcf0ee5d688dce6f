package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gameshub/utils/errors"
)

type sample struct {
	Email string   `json:"email" validate:"required,email"`
	Slug  string   `json:"slug" validate:"required,slug"`
	Role  string   `json:"role" validate:"omitempty,role"`
	Types []string `json:"game_types" validate:"dive,gametype"`
	Score int64    `json:"score" validate:"min=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "a@example.com", Slug: "word-quiz", Types: []string{"quiz"}}))

	err := v.Validate(&sample{Email: "nope", Slug: "Bad Slug", Role: "root", Types: []string{"chess"}, Score: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "slug")
	assert.Contains(t, verr.Fields, "role")
	assert.Contains(t, verr.Fields, "score")
	assert.Len(t, verr.Fields, 5)
}
