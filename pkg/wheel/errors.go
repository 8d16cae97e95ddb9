package wheel

import "errors"

var (
	// ErrEmptySet is returned when a spin is requested with no segments.
	ErrEmptySet = errors.New("wheel: no segments to spin")
	// ErrInvalidState is returned when a spin (or an edit) arrives while a spin is in flight.
	ErrInvalidState = errors.New("wheel: spin already in progress")
	// ErrInvalidColor indicates a color that is not a #RRGGBB hex string.
	ErrInvalidColor = errors.New("wheel: color must match #RRGGBB")
	// ErrInvalidLabel indicates a label that is empty after trimming.
	ErrInvalidLabel = errors.New("wheel: label must not be empty")
	// ErrIndexOutOfRange indicates a stale or bogus segment index.
	ErrIndexOutOfRange = errors.New("wheel: segment index out of range")
	// ErrPaletteExhausted indicates more default segments than palette colors.
	ErrPaletteExhausted = errors.New("wheel: default items exceed palette size")
	// ErrTooFewSegments is returned by Commit when fewer than MinCommitSegments remain.
	ErrTooFewSegments = errors.New("wheel: need at least 2 segments to save")
)
