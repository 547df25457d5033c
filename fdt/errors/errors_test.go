package errors_test

import (
	"errors"
	"testing"

	fdterrors "github.com/deploymenttheory/go-fdt/fdt/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := fdterrors.Wrap(fdterrors.KindFormat, "bad thing", cause)

	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "format")
	assert.Contains(t, e.Error(), "bad thing")
	assert.Contains(t, e.Error(), "boom")
}

func TestErrorWithoutCause(t *testing.T) {
	e := fdterrors.New(fdterrors.KindCapacity, "arena exhausted")
	assert.Nil(t, e.Unwrap())
	assert.Contains(t, e.Error(), "capacity")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "configuration", fdterrors.KindConfiguration.String())
	assert.Equal(t, "format", fdterrors.KindFormat.String())
	assert.Equal(t, "capacity", fdterrors.KindCapacity.String())
}
