package catalog

import "errors"

var (
	// ErrDuplicateDefinition indicates an attempt to register a component type twice.
	ErrDuplicateDefinition = errors.New("catalog: duplicate definition")
	// ErrInvalidDefinition occurs when a definition is missing its type or carries a broken schema.
	ErrInvalidDefinition = errors.New("catalog: invalid definition")
	// ErrUnknownType occurs when props are validated against an unregistered component type.
	ErrUnknownType = errors.New("catalog: unknown component type")
)
