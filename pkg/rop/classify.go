package rop

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrNotFound can be wrapped by actions to signal a missing resource.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized can be wrapped by actions to signal rejected credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation can be wrapped by actions to signal invalid input. The
	// full error text becomes the user message, so keep it user-safe.
	ErrValidation = errors.New("validation failed")
)

// StatusError carries an HTTP status code from a transport so FromError can
// classify it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// FromError classifies err into an AppFailure. Nil maps to the zero AppFailure.
func FromError(err error) AppFailure {
	if IsNil(err) {
		return AppFailure{}
	}

	var f AppFailure
	if errors.As(err, &f) {
		return f
	}

	switch {
	case errors.Is(err, context.Canceled):
		return Cancelled(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return Network("timeout: " + err.Error())
	case errors.Is(err, ErrValidation):
		return Validation(validationText(err))
	case errors.Is(err, ErrNotFound):
		return NotFound(err.Error())
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized(err.Error())
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		msg := err.Error()
		if f := FromStatus(statusErr.StatusCode, msg); f.Kind() != KindValidation {
			return f
		}
		// validation text reaches users, so keep the status prefix out
		msg = statusErr.Body
		if msg == "" {
			msg = http.StatusText(statusErr.StatusCode)
		}
		return Validation(msg)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return Network(err.Error())
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Network(err.Error())
	}

	return Unexpected(err.Error())
}

// FromStatus maps an HTTP status code to a failure kind.
func FromStatus(code int, msg string) AppFailure {
	switch {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return Validation(msg)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return Unauthorized(msg)
	case code == http.StatusNotFound:
		return NotFound(msg)
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return Network(msg)
	case code >= 500:
		return Server(msg)
	default:
		return Unexpected(msg)
	}
}

// validationText strips the sentinel suffix added by fmt.Errorf("...: %w", ErrValidation).
func validationText(err error) string {
	return strings.TrimSuffix(err.Error(), ": "+ErrValidation.Error())
}
