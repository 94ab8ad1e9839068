package ui

import "errors"

var (
	// ErrCancelled is returned when the user aborts a prompt.
	ErrCancelled = errors.New("selection cancelled")
	// ErrSkipped is returned when the user picks the skip choice.
	ErrSkipped = errors.New("selection skipped")
	// ErrQuit is returned when the user picks the quit choice.
	ErrQuit = errors.New("quit requested")
	// ErrUsage reports a progress call whose step or total is unusable.
	ErrUsage = errors.New("invalid progress usage")
	// ErrConfig reports an invalid choice or glyph configuration.
	ErrConfig = errors.New("invalid prompt configuration")
)
