package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alacase/backend/internal/domain/validation"
)

func TestCreateInputValidate(t *testing.T) {
	name := "Test Client"
	assert.NoError(t, (&CreateInput{ClientName: &name}).Validate())

	err := (&CreateInput{}).Validate()
	require.Error(t, err)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "client_name", verr.Fields[0].Field)
}

func TestOpErrorUnwraps(t *testing.T) {
	inner := errors.New("connection reset")
	err := &OpError{Op: "put", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "put")
}
