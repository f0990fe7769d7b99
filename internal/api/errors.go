package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xanderson/homebank-api/internal/api/shared"
	"github.com/xanderson/homebank-api/internal/domain"
	"github.com/xanderson/homebank-api/internal/service"
	"github.com/xanderson/homebank-api/internal/store"
)

// Client-facing messages for the errors the user endpoints return.
const (
	MsgUserNotFound      = "User not found"
	MsgAccountExists     = "Account number already exists"
	MsgInvalidUserID     = "Invalid user ID"
	MsgInvalidRequest    = "Invalid request format"
	MsgValidationFailed  = "Validation error"
	MsgUnexpectedFailure = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Not found errors
	case errors.Is(err, service.ErrUserNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrDuplicateAccount),
		store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrNilUser),
		isValidatorError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedFailure
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound

	case errors.Is(err, service.ErrDuplicateAccount),
		errors.Is(err, store.ErrAccountNumberExists):
		return MsgAccountExists

	case errors.Is(err, domain.ErrInvalidID):
		return MsgInvalidUserID

	case isValidatorError(err):
		return SanitizeValidationError(err)

	case errors.Is(err, domain.ErrValidation):
		// Domain validation messages are fixed strings without user data.
		return validationMessage(err)

	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, service.ErrNilUser):
		return MsgInvalidRequest

	default:
		return MsgUnexpectedFailure
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// error response. defaultMsg replaces the generic message for 5xx responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		msg = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

// HandleValidationError writes a 400 response for a request that failed
// struct validation.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fieldPath(fe.Namespace()), getValidationTagMessage(fe.Tag()))
	}

	if errors.Is(err, domain.ErrValidation) {
		return validationMessage(err)
	}

	return MsgValidationFailed
}

func isValidatorError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// fieldPath turns "CreateUserRequest.Account.Number" into "account.number".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

// validationMessage strips the "validation failed: " prefix and capitalizes
// the first letter.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
	if msg == "" || msg == domain.ErrValidation.Error() {
		return MsgValidationFailed
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too short"
	case "max", "lte":
		return "too long"
	case "numeric":
		return "must be numeric"
	default:
		return "validation failed"
	}
}
