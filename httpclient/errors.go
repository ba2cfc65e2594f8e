package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

const unknownErrorMessage = "Unknown error"

var (
	ErrNetwork          = errors.New("httpclient: network error")
	ErrHTTPStatus       = errors.New("httpclient: http status error")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrCreateRequest    = errors.New("httpclient: failed to create request")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
	ErrTimeout          = errors.New("httpclient: timeout exceeded")
)

// Error is the single failure shape returned by the client. StatusCode is zero
// when the request never produced a response status.
type Error struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) HasStatus() bool {
	return e.StatusCode != 0
}

func (e *Error) Is(target error) bool {
	if e.HasStatus() {
		return target == ErrHTTPStatus //nolint:errorlint,err113
	}

	return target == ErrNetwork //nolint:errorlint,err113
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewStatusError(statusCode int) *Error {
	reason := "Request Failed"
	if statusCode == http.StatusNotFound {
		reason = "Not Found"
	}

	return &Error{
		Message:    fmt.Sprintf("HTTP %d: %s", statusCode, reason),
		StatusCode: statusCode,
		Err:        nil,
	}
}

func NewNetworkError(cause error) *Error {
	message := unknownErrorMessage
	if cause != nil && cause.Error() != "" {
		message = cause.Error()
	}

	return &Error{
		Message:    message,
		StatusCode: 0,
		Err:        cause,
	}
}

func AsError(err error) (*Error, bool) {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr, true
	}

	return nil, false
}
