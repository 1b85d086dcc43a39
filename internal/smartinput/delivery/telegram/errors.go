package telegram

import (
	"errors"

	"smart-task-input/internal/smartinput"
)

const genericErrorMessage = "Something went wrong while reading your task. Please try again."

// errorMessage returns a user-facing reply for a use-case error, or "" when
// the error is not one the user can act on.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, smartinput.ErrInputTooLong):
		return "That line is too long for a single task. Try a shorter title and move details after //."
	case errors.Is(err, smartinput.ErrInvalidTimezone):
		return "The configured timezone is not valid."
	case errors.Is(err, smartinput.ErrEmptyInput):
		return "Send me a task, for example: Fix bug tomorrow 3pm #backend @urgent p1"
	default:
		return ""
	}
}
