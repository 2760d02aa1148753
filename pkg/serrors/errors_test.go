package serrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := NewNotFound("portfolio item")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
	assert.False(t, HasCode(nil, CodeNotFound))
}

func TestAsBase_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create portfolio item: %w", NewConflict("duplicate code"))
	base, ok := AsBase(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeConflict, base.Code)
}

func TestValidationErrors(t *testing.T) {
	var err error = ValidationErrors{"title": "required", "order": "must be greater than or equal to 0"}
	assert.Contains(t, err.Error(), "2 field(s)")

	var fields ValidationErrors
	assert.True(t, errors.As(err, &fields))
	assert.Equal(t, "required", fields["title"])
}
