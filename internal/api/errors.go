package api

import (
	"errors"
	"net/http"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

var errMalformedBody = domain.ErrValidation(domain.CodeValidationFailed, "request body must be valid JSON")

// httpStatusFromDomainError maps domain errors to HTTP status codes.
// Conflicts map to 400 rather than 409: duplicate registration is reported
// as a bad request, matching the public API contract.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var unauthenticated *domain.UnauthenticatedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &unauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &validation), errors.As(err, &conflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorCodeAndMessage extracts the stable machine-readable code and message
// from a domain error. Unexpected errors (e.g. store connectivity loss) are
// reported as a generic internal failure without leaking detail.
func errorCodeAndMessage(err error) (string, string) {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var unauthenticated *domain.UnauthenticatedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return notFound.Code, notFound.Message
	case errors.As(err, &accessDenied):
		return accessDenied.Code, accessDenied.Message
	case errors.As(err, &unauthenticated):
		return unauthenticated.Code, unauthenticated.Message
	case errors.As(err, &validation):
		return validation.Code, validation.Message
	case errors.As(err, &conflict):
		return conflict.Code, conflict.Message
	default:
		return "internal-error", "internal server error"
	}
}
