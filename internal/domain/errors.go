package domain

import "errors"

var (
	// ErrCredentialMissing is returned when no service-account credential
	// is available from either the CREDENTIALS_JSON env var or the local file
	ErrCredentialMissing = errors.New("spreadsheet credential missing")

	// ErrCredentialInvalid is returned when the credential exists but is
	// malformed or rejected by the spreadsheet service
	ErrCredentialInvalid = errors.New("spreadsheet credential invalid")

	// ErrFetchFailed is returned when listing tabs or reading rows fails
	ErrFetchFailed = errors.New("spreadsheet fetch failed")

	// ErrSearchFailed is returned when the search pipeline fails after
	// categories were already loaded successfully
	ErrSearchFailed = errors.New("search failed")

	// ErrChatUnavailable is returned when the chat completion call fails
	// or the chat backend is not configured
	ErrChatUnavailable = errors.New("chat backend unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
