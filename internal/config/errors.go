package config

import "errors"

// Validation errors returned by Config.Validate, checked with errors.Is.
var (
	// ErrInvalidBackend is returned for a display backend other than
	// auto, inky, headless or window.
	ErrInvalidBackend = errors.New("invalid display backend: must be auto, inky, headless or window")

	// ErrInvalidModel is returned for an Inky model other than auto, phat or what.
	ErrInvalidModel = errors.New("invalid display model: must be auto, phat, phat2 or what")

	// ErrInvalidColor is returned for an ink name the panels do not know.
	ErrInvalidColor = errors.New("invalid color: must be white, black, red or yellow")

	// ErrInvalidSize is returned for a negative panel width or height.
	ErrInvalidSize = errors.New("invalid display size: must be non-negative")

	ErrInvalidFontSize = errors.New("invalid font size: must be positive")
	ErrInvalidFont     = errors.New("invalid builtin font")

	ErrInvalidRotation = errors.New("invalid rotation: must be 0, 90, 180 or 270")
	ErrInvalidAlign    = errors.New("invalid alignment: must be left, center or right")
	ErrInvalidSpacing  = errors.New("invalid line spacing: must be non-negative")
	ErrInvalidPoll     = errors.New("invalid poll interval: must be positive")
	ErrEmptyLayout     = errors.New("empty clock layout")
)

var (
	// ErrConfigNotFound is returned when an explicitly named file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigExists is returned by Save when it would overwrite a file.
	ErrConfigExists = errors.New("configuration file already exists")
)
