package mail

import "errors"

// Errors returned by Client operations.
var (
	// ErrNoRecipients is returned by Send when given no recipients.
	ErrNoRecipients = errors.New("at least one recipient is required")

	// ErrNoMatchingMessage is returned by FetchLatest when the search finds
	// nothing.
	ErrNoMatchingMessage = errors.New("no matching message")

	// ErrFetchFailed is returned by FetchLatest when a message was found,
	// but its content could not be retrieved.
	ErrFetchFailed = errors.New("unable to fetch message")
)
