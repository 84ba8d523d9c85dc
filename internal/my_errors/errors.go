package my_errors

import "errors"

// Sentinel my_errors for business logic. The strings double as the wire-level
// "detail" text, so their casing follows the API contract rather than Go lint.
var (
	// Activity my_errors
	ErrActivityNotFound = errors.New("Activity not found")

	// Participant my_errors
	ErrAlreadySignedUp = errors.New("Student is already signed up for this activity")
	ErrNotSignedUp     = errors.New("Student is not signed up for this activity")

	// Validation my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)
