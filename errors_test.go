package decimal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrNaNMessage(t *testing.T) {
	e := ErrNaN{Msg: "division by zero"}
	assert.Equal(t, "decimal: division by zero", e.Error())

	bare := ErrNaN{}
	assert.Equal(t, "decimal: NaN", bare.Error())
}

func TestIllegalOperationErrorUnwrap(t *testing.T) {
	err := illegalOp("%q does not fit", "300")
	var ioErr *IllegalOperationError
	assert.True(t, errors.As(err, &ioErr))
	assert.NotEmpty(t, ioErr.Error())
	assert.NotNil(t, errors.Unwrap(err))
}
