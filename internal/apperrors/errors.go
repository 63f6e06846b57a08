package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrNotAuthenticated indicates that a ledger operation was invoked with no
// active user identity.
var ErrNotAuthenticated = errors.New("no authenticated user")

// ErrInvalidPlan indicates that a deposit referenced a plan id absent from
// the catalog.
var ErrInvalidPlan = errors.New("deposit plan not found")

// ErrUnauthorized indicates that credentials were rejected, by both the
// remote gateway and the local fallback.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRemoteUnavailable indicates a network, HTTP or parse failure talking to
// the remote gateway. Callers fall back to local state instead of surfacing it.
var ErrRemoteUnavailable = errors.New("remote gateway unavailable")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
