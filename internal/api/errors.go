package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// APIError is returned when the service responds with a non-success status.
// Message carries the service-provided error text when one could be
// extracted from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == http.StatusUnauthorized {
		return fmt.Sprintf("invalid API key (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from a response status and raw body.
// Error envelopes vary across providers and proxies, so the message is
// probed from the common shapes before falling back to the raw body.
func newAPIError(statusCode int, body []byte) *APIError {
	message := strings.TrimSpace(string(body))

	for _, path := range []string{"error.message", "error", "detail", "message"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type == gjson.String && v.Str != "" {
			message = v.Str
			break
		}
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &APIError{StatusCode: statusCode, Message: message}
}
