package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedResponse = errors.New("malformed server response")
	ErrReloadFailed      = errors.New("saved, but reloading the collection failed")
	ErrNotAuthenticated  = errors.New("not authenticated, run: cobros auth login")
)

// TransportError is a failed API call. Status is 0 when no response was received.
type TransportError struct {
	Method string
	Path   string
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s %s: server returned %d: %s", e.Method, e.Path, e.Status, msg)
	}
	return fmt.Sprintf("%s %s: server returned %d", e.Method, e.Path, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message extracts a human readable message from the error body, if any.
func (e *TransportError) Message() string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
		return ""
	}
	switch {
	case body.Detail != "":
		return body.Detail
	case body.Error != "":
		return body.Error
	default:
		return body.Message
	}
}

// IsStatus reports whether err is a TransportError with the given status.
func IsStatus(err error, status int) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Status == status
}
