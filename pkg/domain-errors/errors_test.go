package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := New(CodeNotFound, "skill not found")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeForbidden))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", New(CodeAlreadyVerified, "duplicate verification"))
		assert.True(t, HasCode(err, CodeAlreadyVerified))
	})

	t.Run("matches wrapped cause chain", func(t *testing.T) {
		cause := New(CodeNotFound, "record missing")
		err := Wrap(cause, CodeInternal, "lookup failed")
		assert.True(t, HasCode(err, CodeInternal))
		assert.True(t, HasCode(err, CodeNotFound))
	})

	t.Run("nil and plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(nil, CodeInternal))
		assert.False(t, HasCode(errors.New("plain"), CodeInternal))
	})
}

func TestCodeOf(t *testing.T) {
	t.Run("outermost code wins", func(t *testing.T) {
		err := Wrap(New(CodeNotFound, "inner"), CodeInternal, "outer")
		assert.Equal(t, CodeInternal, CodeOf(err))
	})

	t.Run("plain error defaults to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to persist skill")

	require.EqualError(t, err, "failed to persist skill: connection refused")
	assert.Equal(t, "failed to persist skill", err.Message())
	assert.ErrorIs(t, err, cause)
}
