package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds. Handlers map these to HTTP statuses at the boundary; no
// stack traces or upstream internals leak past HTTPStatus.
var (
	// ErrInvalidHandle means user input failed shape validation. Raised
	// before any network call.
	ErrInvalidHandle = errors.New("invalid summoner name")

	// ErrMissingParameter means a required query parameter was absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrTimeout means an upstream call ran past its deadline.
	ErrTimeout = errors.New("upstream request timed out")

	// ErrGenerationUnavailable is internal only: the text generator is
	// unconfigured or unreachable. Callers substitute the deterministic
	// fallback instead of surfacing it.
	ErrGenerationUnavailable = errors.New("text generation unavailable")
)

// UpstreamError carries the status and body of a failed external data-source
// call for diagnostics. Never retried.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("riot API error %d: %s", e.Status, e.Body)
}

// HTTPStatus maps an error to the status the boundary handler reports.
func HTTPStatus(err error) int {
	var upstream *UpstreamError
	switch {
	case errors.Is(err, ErrInvalidHandle), errors.Is(err, ErrMissingParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
