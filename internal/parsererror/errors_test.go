package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	underlying := errors.New("bad number")
	err := &ParseError{
		Parser: "CSV",
		Field:  "Issued Value",
		Value:  "abc",
		Err:    underlying,
	}

	assert.Contains(t, err.Error(), "Issued Value")
	assert.Contains(t, err.Error(), "abc")
	assert.Equal(t, underlying, errors.Unwrap(err))
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "data.csv",
		ExpectedFormat: "CSV with header row",
		Msg:            "missing header",
	}

	assert.Contains(t, err.Error(), "data.csv")
	assert.Contains(t, err.Error(), "CSV with header row")
}

func TestEmptyDatasetError(t *testing.T) {
	err := &EmptyDatasetError{FilePath: "empty.csv"}
	assert.Contains(t, err.Error(), "empty.csv")

	// Must be matchable with errors.As through a wrap
	wrapped := fmt.Errorf("loading: %w", err)
	var target *EmptyDatasetError
	assert.True(t, errors.As(wrapped, &target))
}
