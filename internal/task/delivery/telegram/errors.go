package telegram

import (
	"errors"

	"smart-task-manager/internal/task"
)

// errorMessage returns a user-facing reply for a use case error.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrNoTasksParsed):
		return "No tasks found in your message. Try naming who does what, e.g. \"Rajeev, send the report by Friday\"."
	case errors.Is(err, task.ErrTaskNotFound):
		return "Task not found."
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrEmptyName):
		return "Please send a task description."
	}
	return "Something went wrong while processing your request. Please try again."
}

// isUserError reports whether err is caused by the message rather than the service.
func isUserError(err error) bool {
	return errors.Is(err, task.ErrNoTasksParsed) ||
		errors.Is(err, task.ErrTaskNotFound) ||
		errors.Is(err, task.ErrEmptyInput) ||
		errors.Is(err, task.ErrEmptyName)
}
