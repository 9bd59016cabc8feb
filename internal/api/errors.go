package api

import "fmt"

// APIError represents a non-success HTTP response from the backend. Detail
// carries the backend's error payload (FastAPI's "detail" field) when present.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail,omitempty"`
	Method     string `json:"-"`
	Path       string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: %s %s status=%d detail=%s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error: %s %s status=%d", e.Method, e.Path, e.StatusCode)
}
