package api

import (
	"encoding/json"
	"fmt"
)

// APIError carries the status and body of a non-2xx response that is
// neither an authentication nor an authorization failure.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// newAPIError builds an APIError, lifting the message out of a JSON
// {"error": "..."} body when the server sent one.
func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Message = payload.Error
	}
	return e
}
