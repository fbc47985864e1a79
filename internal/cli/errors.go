package cli

import "errors"

// Error variables for CLI and session commands.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrNoDrag         = errors.New("no drag in progress")
	ErrTaskNotFound   = errors.New("task not found")
	ErrSessionFailed  = errors.New("session had failing commands")
)
