package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCollectsAllViolations(t *testing.T) {
	var verr Error
	assert.True(t, verr.Empty())

	verr.Add("client_name", "required")
	verr.Add("amount", "must be a positive integer")

	require.Len(t, verr.Fields, 2)
	assert.False(t, verr.Empty())
	assert.Equal(t, "client_name: required; amount: must be a positive integer", verr.Error())
}

func TestFromBindErrorNamesField(t *testing.T) {
	var dst struct {
		ClientName string `json:"client_name"`
	}
	err := json.Unmarshal([]byte(`{"client_name": 42}`), &dst)
	require.Error(t, err)

	verr := FromBindError(err)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "client_name", verr.Fields[0].Field)
	assert.Contains(t, verr.Error(), "client_name")
}

func TestFromBindErrorMalformedBody(t *testing.T) {
	var dst struct{}
	err := json.Unmarshal([]byte(`{not json`), &dst)
	require.Error(t, err)

	verr := FromBindError(err)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "body", verr.Fields[0].Field)
}
