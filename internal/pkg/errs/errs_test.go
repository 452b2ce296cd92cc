//go:build unit

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errors.New("location is required")

	t.Run("marked error matches both cause and mark", func(t *testing.T) {
		err := Mark(cause, ErrValidation)

		assert.True(t, Is(err, ErrValidation))
		assert.True(t, Is(err, cause))
		assert.Equal(t, "location is required", err.Error())
	})

	t.Run("nil cause returns the mark itself", func(t *testing.T) {
		err := Mark(nil, ErrForbidden)

		assert.True(t, Is(err, ErrForbidden))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))

	err := Wrapf(ErrListingNotFound, "listing %s", "abc")
	assert.True(t, Is(err, ErrListingNotFound))
	assert.False(t, Is(err, ErrRequestNotFound))
	assert.Contains(t, err.Error(), "listing abc")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, ExtractStackLines(nil, 5))

	lines := ExtractStackLines(New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "boom", lines[0])
}
