package renderers

import "errors"

var (
	// ErrDuplicateRenderer indicates an attempt to register a component type twice.
	ErrDuplicateRenderer = errors.New("renderers: duplicate renderer")
	// ErrInvalidRenderer occurs when a registration lacks a type name or capability.
	ErrInvalidRenderer = errors.New("renderers: invalid renderer")
)
