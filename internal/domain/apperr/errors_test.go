package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_IsErrValidation(t *testing.T) {
	err := fmt.Errorf("create claim: %w", Invalid("status", "must be one of the intake stages"))

	require.ErrorIs(t, err, ErrValidation)
	fields := Fields(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "status", fields[0].Field)
	assert.Contains(t, err.Error(), "status must be one of the intake stages")
}

func TestFields_NonValidation(t *testing.T) {
	assert.Nil(t, Fields(ErrNotFound))
	assert.Nil(t, Fields(errors.New("boom")))
}

func TestValidationError_EmptyMessage(t *testing.T) {
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
}
