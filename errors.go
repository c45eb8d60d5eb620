package cardform

import "errors"

var (
	// ErrSubmitBlocked is returned by Submit while the submit gate is closed.
	ErrSubmitBlocked = errors.New("cardform: submit blocked: card details are incomplete or invalid")

	// ErrNoSubmitHandler is returned by Submit when the form has no callback.
	ErrNoSubmitHandler = errors.New("cardform: no submit handler configured")

	// ErrSubmitFailed wraps errors returned by the submit callback.
	ErrSubmitFailed = errors.New("cardform: submit handler failed")

	// ErrUnknownField is returned when an event names a field the form does not have.
	ErrUnknownField = errors.New("cardform: unknown field")

	// ErrStreamClosed is returned when publishing to a closed Stream.
	ErrStreamClosed = errors.New("cardform: stream closed")

	// ErrInvalidTransition indicates a field state transition missing from the table.
	ErrInvalidTransition = errors.New("cardform: invalid field state transition")
)
