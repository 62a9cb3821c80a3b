package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.True(t, Is(wrapped, original))
}

func TestIsThroughStandardWrapping(t *testing.T) {
	sentinel := New("sentinel")
	wrapped := fmt.Errorf("outer: %w", sentinel)
	assert.True(t, Is(wrapped, sentinel))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("base"), "try a floating-point representation")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "base")
}
