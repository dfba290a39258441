package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOutputFormat(t *testing.T) {
	assert.NoError(t, IsValidOutputFormat("json"))
	assert.NoError(t, IsValidOutputFormat("csv"))
	assert.Error(t, IsValidOutputFormat("xml"))
	assert.Error(t, IsValidOutputFormat(""))
	assert.Error(t, IsValidOutputFormat("JSON"))
}

func TestIsValidReferenceLabel(t *testing.T) {
	assert.NoError(t, IsValidReferenceLabel("Številka:"))
	assert.NoError(t, IsValidReferenceLabel("Ref:"))
	assert.Error(t, IsValidReferenceLabel(""))
}
