package main

import (
	"errors"

	"github.com/matsen/gramschmidt/internal/config"
	"github.com/matsen/gramschmidt/internal/generator"
	"github.com/matsen/gramschmidt/internal/orthogonal"
	"github.com/matsen/gramschmidt/internal/vector"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable file, invalid values)
	ExitGenerate    = 3 // No independent vectors could be drawn within the bounds
	ExitDegenerate  = 4 // Zero-length vector or failed orthogonality check
)

// exitCodeFor maps an error to the exit code of its failure class.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, generator.ErrBoundsTooNarrow), errors.Is(err, generator.ErrInvalidBounds):
		return ExitGenerate
	case errors.Is(err, vector.ErrDivideByZero),
		errors.Is(err, orthogonal.ErrNotOrthogonal),
		errors.Is(err, orthogonal.ErrNotUnit):
		return ExitDegenerate
	default:
		return ExitError
	}
}
