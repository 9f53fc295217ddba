package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is the single failure shape for both HTTP and transport errors.
// Status is 0 when the request never got a response.
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Transport reports whether the failure happened before any HTTP response.
func (e *Error) Transport() bool { return e.Status == 0 }

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == 404
}

// Message extracts the human-readable text of err, or "" when err carries none.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return strings.TrimSpace(ae.Message)
	}
	return strings.TrimSpace(err.Error())
}

func statusError(op string, status int, body []byte) *Error {
	msg := detailMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("HTTP error, status: %d", status)
	}
	return &Error{Op: op, Status: status, Message: msg}
}

func transportError(op string, err error) *Error {
	return &Error{Op: op, Message: err.Error(), Err: err}
}

// detailMessage reads the `detail` field of an error body. FastAPI-style
// validation errors carry a list of {msg} objects instead of a string.
func detailMessage(body []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(env.Detail, &items); err == nil {
		var parts []string
		for _, it := range items {
			if m := strings.TrimSpace(it.Msg); m != "" {
				parts = append(parts, m)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
