package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/activitylog/api/activity/domain"
	pkgerrors "github.com/pkg/errors"
)

const (
	CodeValidation = "validation_error"
	CodeInvalidID  = "invalid_id"
	CodeNotFound   = "not_found"
	CodeStore      = "store_error"
	CodeInternal   = "internal_error"
)

type HTTPStatusError struct {
	StatusCode  int
	Code        string
	Message     string
	OriginalErr error
}

func (e *HTTPStatusError) Error() string {
	if e.OriginalErr == nil {
		return fmt.Sprintf("(status %d) %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("(status %d) %s: %v", e.StatusCode, e.Message, e.OriginalErr)
}

func (e *HTTPStatusError) Unwrap() error {
	return e.OriginalErr
}

func NewHTTPStatusError(statusCode int, message string, originalErr error) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode:  statusCode,
		Code:        codeForStatus(statusCode),
		Message:     message,
		OriginalErr: originalErr,
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusNotFound:
		return CodeNotFound
	}
	return CodeInternal
}

func IsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	if err == nil {
		return nil, false
	}
	err = pkgerrors.Cause(err)
	httpErr, ok := err.(*HTTPStatusError)
	return httpErr, ok
}

// FromError maps err onto the HTTP status and error code returned to clients.
// Store failures never leak their cause in Message.
func FromError(err error) *HTTPStatusError {
	if httpErr, ok := IsHTTPStatusError(err); ok {
		return httpErr
	}

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return &HTTPStatusError{StatusCode: http.StatusBadRequest, Code: CodeValidation, Message: ve.Message, OriginalErr: err}
	case errors.Is(err, domain.ErrInvalidID):
		return &HTTPStatusError{StatusCode: http.StatusBadRequest, Code: CodeInvalidID, Message: "Invalid activity ID", OriginalErr: err}
	case errors.Is(err, domain.ErrNotFound):
		return &HTTPStatusError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: "Activity not found", OriginalErr: err}
	case domain.IsStoreError(err):
		return &HTTPStatusError{StatusCode: http.StatusInternalServerError, Code: CodeStore, Message: "Activity store unavailable", OriginalErr: err}
	}
	return &HTTPStatusError{StatusCode: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal server error", OriginalErr: err}
}
