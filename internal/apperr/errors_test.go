package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid handle", err: ErrInvalidHandle, want: http.StatusBadRequest},
		{name: "wrapped invalid handle", err: fmt.Errorf("%w: empty", ErrInvalidHandle), want: http.StatusBadRequest},
		{name: "missing parameter", err: ErrMissingParameter, want: http.StatusBadRequest},
		{name: "timeout", err: fmt.Errorf("%w: account lookup", ErrTimeout), want: http.StatusGatewayTimeout},
		{name: "upstream", err: &UpstreamError{Status: 404, Body: "not found"}, want: http.StatusBadGateway},
		{name: "wrapped upstream", err: fmt.Errorf("account lookup: %w", &UpstreamError{Status: 500}), want: http.StatusBadGateway},
		{name: "unknown", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Status: 429, Body: "rate limit exceeded"}
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}
