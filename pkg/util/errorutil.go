package util

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a member of the fixed failure taxonomy. Every failure that can
// reach a client maps to exactly one of the variants below; the bound
// status/code/message triple never changes at runtime.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches two taxonomy members by code, so wrapped causes do not break
// errors.Is comparisons against the canonical variants.
func (e *APIError) Is(target error) bool {
	var other *APIError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// Canonical taxonomy. Statuses and codes are part of the public API contract.
var (
	ErrBadRequest         = &APIError{HTTPStatus: http.StatusBadRequest, Code: "F001", Message: "malformed request"}
	ErrUnauthenticated    = &APIError{HTTPStatus: http.StatusUnauthorized, Code: "F002", Message: "authentication failed"}
	ErrPermissionDenied   = &APIError{HTTPStatus: http.StatusForbidden, Code: "F003", Message: "insufficient permission"}
	ErrInvalidParameter   = &APIError{HTTPStatus: http.StatusUnprocessableEntity, Code: "F004", Message: "parameter validation error"}
	ErrUserNotFound       = &APIError{HTTPStatus: http.StatusNotFound, Code: "F005", Message: "user not found"}
	ErrPasswordMismatched = &APIError{HTTPStatus: http.StatusConflict, Code: "F006", Message: "password confirmation mismatch"}
	ErrDuplicatedEmail    = &APIError{HTTPStatus: http.StatusConflict, Code: "F007", Message: "email already registered"}
	ErrAuthenticationFail = &APIError{HTTPStatus: http.StatusUnprocessableEntity, Code: "F008", Message: "email or password incorrect"}
	ErrServerError        = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "E001", Message: "internal server error"}
)

// WrapServerError attaches an internal cause to the ServerError variant.
// The cause is for logs only; clients always see the generic triple.
func WrapServerError(err error) *APIError {
	return &APIError{
		HTTPStatus: ErrServerError.HTTPStatus,
		Code:       ErrServerError.Code,
		Message:    ErrServerError.Message,
		Err:        err,
	}
}

// ToAPIError converts any error to a taxonomy member. Errors that are not
// already part of the taxonomy collapse to ServerError so storage or
// framework detail never leaks to clients.
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return WrapServerError(err)
}
