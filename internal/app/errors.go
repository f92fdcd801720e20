package app

import (
	"errors"
	"fmt"
)

// User facing messages.
const (
	MessageNotFound = "Utilisateur introuvable"
	MessageUpstream = "Erreur lors de la récupération des données"
	MessageUnknown  = "Une erreur inconnue est survenue"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotFoundError is returned when requested github resource doesn't exist.
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFoundError checks if given error is caused by missing upstream resource.
func IsNotFoundError(err error) bool {
	var nfe NotFoundError
	return errors.As(err, &nfe)
}

// UpstreamError is returned when github responds with unexpected status code.
type UpstreamError struct {
	StatusCode int
}

// Error implements error interface
func (e UpstreamError) Error() string {
	return fmt.Sprintf("got invalid http status code: %d", e.StatusCode)
}

// IsUpstreamError checks if given error is caused by invalid upstream response status.
func IsUpstreamError(err error) bool {
	var ue UpstreamError
	return errors.As(err, &ue)
}

// TransportError is returned when github couldn't be reached or its response couldn't be read.
// Err is the underlying failure.
type TransportError struct {
	Err error
}

// Error implements error interface
func (e TransportError) Error() string {
	if e.Err == nil {
		return "transport error"
	}
	return e.Err.Error()
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// UnknownViewerError is returned when viewer with given id is not registered.
type UnknownViewerError string

// Error implements error interface
func (e UnknownViewerError) Error() string {
	return "unknown viewer: " + string(e)
}

// IsUnknownViewerError checks if given error is caused by missing viewer.
func IsUnknownViewerError(err error) bool {
	var uve UnknownViewerError
	return errors.As(err, &uve)
}

// TooManyRequestsError is returned when request rate limit is exceeded.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by exceeded rate limit.
func IsTooManyRequestsError(err error) bool {
	var tmr TooManyRequestsError
	return errors.As(err, &tmr)
}

// ErrorKind classifies profile lookup failures.
type ErrorKind string

// Profile lookup failure kinds.
const (
	ErrorKindNotFound  ErrorKind = "not_found"
	ErrorKindUpstream  ErrorKind = "upstream"
	ErrorKindTransport ErrorKind = "transport"
)

// Classify returns kind and user facing message for profile lookup error.
func Classify(err error) (ErrorKind, string) {
	switch {
	case IsNotFoundError(err):
		return ErrorKindNotFound, MessageNotFound
	case IsUpstreamError(err):
		return ErrorKindUpstream, MessageUpstream
	}

	var te TransportError
	if errors.As(err, &te) {
		err = te.Err
	}

	msg := MessageUnknown
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return ErrorKindTransport, msg
}
