package reminder

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskCompleted = errors.New("task is already completed")
	ErrNoRecipient   = errors.New("no recipient configured")
	ErrSendFailed    = errors.New("failed to send reminder email")
)
