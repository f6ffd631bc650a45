package render

import "errors"

var (
	ErrComponentNotFound = errors.New("render: component not found")
	ErrRendererMissing   = errors.New("render: no renderer registered")
	ErrCyclicContainment = errors.New("render: cyclic containment detected")
)
