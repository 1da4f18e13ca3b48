package registry

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownBase indicates a base number with no registered alphabet.
	ErrUnknownBase = errors.New("registry: unknown base")
	// ErrInvalidConfig indicates an alphabet definition that cannot be registered.
	ErrInvalidConfig = errors.New("registry: invalid alphabet definition")
)
