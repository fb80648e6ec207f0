package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is returned for responses with a status above 299
type Error struct {
	StatusCode int
	// Message is the service's message when the body carried one
	Message string
	// TypeKey identifies the server-side exception type, e.g. BuildNotFoundException
	TypeKey string
	Body    []byte
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds an Error from a failed response body
func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status, Body: body}
	var payload struct {
		Message string `json:"message"`
		TypeKey string `json:"typeKey"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		e.Message = payload.Message
		e.TypeKey = payload.TypeKey
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("Failed request: (%d)", status)
	}
	return e
}

// IsNotFound reports whether err is a 404 from the service
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}
