package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a record that already exists.
var ErrDuplicate = errors.New("record already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the acting admin may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrAssetNotReady indicates a required asset (e.g. the receipt logo) is
// unavailable. Document generation is aborted before anything is written.
var ErrAssetNotReady = errors.New("asset not ready")

// ErrMalformedBackup indicates a backup file that fails the shape check.
// Restore is rejected before any destructive write.
var ErrMalformedBackup = errors.New("malformed backup file")
