package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrAnswerRequired is returned by the built-in validator when a
	// non-optional question receives a blank answer.
	ErrAnswerRequired = errors.New("prompt: an answer is required")
)
