// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, CodeOf(NewNotFoundError("candidate", "")))
	assert.Equal(t, ErrorCode(""), CodeOf(fmt.Errorf("plain error")))

	wrapped := fmt.Errorf("wrapped: %w", NewUnauthorizedError("details"))
	assert.Equal(t, ErrCodeUnauthorized, CodeOf(wrapped))
	assert.True(t, IsUnauthorized(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestNormalize(t *testing.T) {
	std := NewNetworkError(fmt.Errorf("connection refused"))
	assert.Same(t, std, Normalize(std))

	plain := Normalize(fmt.Errorf("boom"))
	assert.Equal(t, ErrorCode("INTERNAL_ERROR"), plain.Code)
	assert.Equal(t, "boom", plain.Details)
}

func TestAPIErrorRetryability(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{400, false},
		{409, false},
		{500, true},
		{502, true},
		{503, true},
		{504, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.retryable, NewAPIError(tt.status, "").Retryable)
		})
	}
}

func TestEnvelopeErrorFallbackMessage(t *testing.T) {
	assert.Equal(t, "Request failed", NewEnvelopeError("").Message)
	assert.Equal(t, "email taken", NewEnvelopeError("email taken").Message)
}
