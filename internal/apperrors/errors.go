package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a write collides with existing data, e.g. a
// calendar event overlapping an existing booking for the same unit.
var ErrConflict = errors.New("resource conflict")

// ErrUnauthorized indicates that no valid identity could be established for the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that an authenticated user lacks the required permission.
var ErrForbidden = errors.New("forbidden")

// ErrPermissionsUnavailable indicates that RBAC resolution failed after all
// retries. It is distinct from ErrUnauthorized and ErrForbidden: the caller is
// signed in but their capabilities could not be determined, so access is denied
// and the client should be told to refresh rather than "you are not allowed".
var ErrPermissionsUnavailable = errors.New("permissions unavailable")

// ErrRefreshTokenExpired indicates that the presented refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
