package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller lacks permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidDocumentType indicates the document type tag could not be parsed
	ErrInvalidDocumentType = errors.New("invalid document type")

	// ErrUnsupportedDocumentType indicates a recognized type with no registered strategy
	ErrUnsupportedDocumentType = errors.New("unsupported document type")

	// ErrUpstreamFailure indicates an upstream document source failed or returned a bad response
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrEmptyStream indicates an upstream returned a nil or zero-length document body
	ErrEmptyStream = errors.New("empty document stream")

	// ErrMergeFailed indicates the PDF combine operation failed
	ErrMergeFailed = errors.New("merge failed")

	// ErrPageCountMismatch indicates merged output pages do not equal the sum of the inputs
	ErrPageCountMismatch = errors.New("page count mismatch")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")
)
