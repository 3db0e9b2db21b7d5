// Package generator draws random, linearly independent integer bases.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/matsen/gramschmidt/internal/vector"
	"github.com/rs/zerolog"
)

// DefaultMaxAttempts bounds how many matrices Generate draws before giving up.
const DefaultMaxAttempts = 1000

// MaxBound is the largest absolute value accepted for either bound. It keeps
// the draw span within int and the integer determinant within int64.
const MaxBound = 1 << 20

// ErrInvalidBounds is returned when the lower bound exceeds the upper bound
// or either bound lies outside [-MaxBound, MaxBound].
var ErrInvalidBounds = errors.New("invalid bounds")

// ErrBoundsTooNarrow is returned when no non-singular matrix could be drawn
// from the bounds within the attempt limit.
var ErrBoundsTooNarrow = errors.New("bounds too narrow to draw linearly independent vectors")

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator draws random bases from an explicit source.
type Generator struct {
	src         Source
	maxAttempts int
	logger      zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts sets the retry limit. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for per-attempt debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator that consumes src.
func New(src Source, opts ...Option) *Generator {
	g := &Generator{
		src:         src,
		maxAttempts: DefaultMaxAttempts,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxAttempts returns the configured retry limit.
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate draws 3×3 matrices of integers in [lower, upper] until one has a
// non-zero determinant and returns its rows as a Basis.
//
// Returns ErrInvalidBounds if lower > upper or a bound exceeds MaxBound in
// absolute value, and ErrBoundsTooNarrow if the
// bounds collapse to a single value or the attempt limit is exhausted.
func (g *Generator) Generate(lower, upper int) (vector.Basis, error) {
	if lower < -MaxBound || upper > MaxBound {
		return vector.Basis{}, fmt.Errorf("%w: [%d, %d] outside [%d, %d]", ErrInvalidBounds, lower, upper, -MaxBound, MaxBound)
	}
	if lower > upper {
		return vector.Basis{}, fmt.Errorf("%w: lower %d is greater than upper %d", ErrInvalidBounds, lower, upper)
	}
	// Every entry would be equal, so every draw is singular.
	if lower == upper {
		return vector.Basis{}, fmt.Errorf("%w: [%d, %d] contains a single value", ErrBoundsTooNarrow, lower, upper)
	}

	span := upper - lower + 1
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		var m [3][3]int
		for i := range m {
			for j := range m[i] {
				m[i][j] = lower + g.src.IntN(span)
			}
		}

		if det := determinant(m); det != 0 {
			g.logger.Debug().
				Int("attempt", attempt).
				Int64("determinant", det).
				Msg("drew linearly independent vectors")
			return toBasis(m), nil
		}
		g.logger.Debug().Int("attempt", attempt).Msg("singular draw, retrying")
	}

	return vector.Basis{}, fmt.Errorf("%w: [%d, %d] after %d attempts",
		ErrBoundsTooNarrow, lower, upper, g.maxAttempts)
}

// determinant is computed in integer arithmetic so the singularity check is exact.
func determinant(m [3][3]int) int64 {
	a := func(i, j int) int64 { return int64(m[i][j]) }
	return a(0, 0)*(a(1, 1)*a(2, 2)-a(1, 2)*a(2, 1)) -
		a(0, 1)*(a(1, 0)*a(2, 2)-a(1, 2)*a(2, 0)) +
		a(0, 2)*(a(1, 0)*a(2, 1)-a(1, 1)*a(2, 0))
}

func toBasis(m [3][3]int) vector.Basis {
	var b vector.Basis
	for i := range m {
		for j := range m[i] {
			b[i][j] = float64(m[i][j])
		}
	}
	return b
}
