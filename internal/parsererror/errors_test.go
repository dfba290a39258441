package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputPathError(t *testing.T) {
	err := &InputPathError{Path: "/tmp/missing", Reason: "path does not exist"}
	assert.Equal(t, "invalid input path '/tmp/missing': path does not exist", err.Error())
}

func TestExtractionErrorUnwrap(t *testing.T) {
	cause := errors.New("corrupt xref table")
	err := &ExtractionError{FilePath: "a.pdf", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "a.pdf")
	assert.Contains(t, err.Error(), "corrupt xref table")
}

func TestOutputErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &OutputError{FilePath: "out.json", Format: "json", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "out.json")
	assert.Contains(t, err.Error(), "json")
}
