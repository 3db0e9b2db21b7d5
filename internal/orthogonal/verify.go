package orthogonal

import (
	"errors"
	"fmt"
	"math"

	"github.com/matsen/gramschmidt/internal/vector"
)

// DefaultTolerance is the absolute tolerance used when checking a Result.
const DefaultTolerance = 1e-6

var (
	// ErrNotOrthogonal is returned when two basis vectors have a non-zero dot product.
	ErrNotOrthogonal = errors.New("basis vectors are not orthogonal")

	// ErrNotUnit is returned when an orthonormal vector does not have unit length.
	ErrNotUnit = errors.New("basis vector does not have unit length")
)

// MaxOffDiagonal returns the largest |b[i]·b[j]| over all i != j.
func MaxOffDiagonal(b vector.Basis) float64 {
	var worst float64
	for i := range b {
		for j := i + 1; j < len(b); j++ {
			worst = math.Max(worst, math.Abs(b[i].Dot(b[j])))
		}
	}
	return worst
}

// MaxCosine returns the largest |cos θ| between distinct vectors of b, that
// is |b[i]·b[j]| / (|b[i]||b[j]|). Unlike MaxOffDiagonal it does not grow
// with the vector lengths. Pairs involving a zero vector are skipped.
func MaxCosine(b vector.Basis) float64 {
	var worst float64
	for i := range b {
		for j := i + 1; j < len(b); j++ {
			norms := vector.Magnitude(b[i]) * vector.Magnitude(b[j])
			if norms == 0 {
				continue
			}
			worst = math.Max(worst, math.Abs(b[i].Dot(b[j]))/norms)
		}
	}
	return worst
}

// MaxUnitDeviation returns the largest ||b[i]| - 1| over the basis.
func MaxUnitDeviation(b vector.Basis) float64 {
	var worst float64
	for _, v := range b {
		worst = math.Max(worst, math.Abs(vector.Magnitude(v)-1))
	}
	return worst
}

// Verify checks that r.Orthogonal is mutually orthogonal and r.Orthonormal
// is both orthogonal and unit length, each within tol. Orthogonality of
// r.Orthogonal is measured by MaxCosine so the check holds at any scale.
func Verify(r Result, tol float64) error {
	if c := MaxCosine(r.Orthogonal); c > tol {
		return fmt.Errorf("%w: orthogonal basis cosine %.3g exceeds %.3g", ErrNotOrthogonal, c, tol)
	}
	if d := MaxOffDiagonal(r.Orthonormal); d > tol {
		return fmt.Errorf("%w: orthonormal basis off-diagonal %.3g exceeds %.3g", ErrNotOrthogonal, d, tol)
	}
	if d := MaxUnitDeviation(r.Orthonormal); d > tol {
		return fmt.Errorf("%w: deviation %.3g exceeds %.3g", ErrNotUnit, d, tol)
	}
	return nil
}
