package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "not_found", Code(ErrNotFound(nil)))
	assert.Equal(t, "conflict", Code(ErrConflict(nil)))
	assert.Equal(t, "", Code(stderrors.New("plain")))
	assert.Equal(t, "", Code(nil))
}

func TestCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", ErrInvalidMedia(stderrors.New("no stream")))
	assert.Equal(t, "invalid_media", Code(err))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("row missing")
	err := ErrNotFound(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "not_found")
	assert.Contains(t, err.Error(), "row missing")
}

func TestErrorWithoutCause(t *testing.T) {
	err := ErrConflict(nil)
	assert.Equal(t, "conflict: Video is already transcoding", err.Error())
}
