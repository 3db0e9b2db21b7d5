// Package orthogonal derives orthogonal and orthonormal bases with the
// classical Gram-Schmidt procedure.
package orthogonal

import (
	"fmt"

	"github.com/matsen/gramschmidt/internal/vector"
)

// Result holds the two bases derived from an input basis.
type Result struct {
	Orthogonal  vector.Basis
	Orthonormal vector.Basis
}

// GramSchmidt orthogonalizes b in index order and normalizes each result.
//
// The i-th orthogonal vector is b[i] minus its projections onto every
// earlier orthogonal vector. The input is not modified. Returns an error
// wrapping vector.ErrDivideByZero if an intermediate vector is zero, which
// only happens when b is linearly dependent.
func GramSchmidt(b vector.Basis) (Result, error) {
	var r Result

	r.Orthogonal[0] = b[0]
	for i := 1; i < len(b); i++ {
		var sum vector.Vector
		for j := 0; j < i; j++ {
			p, err := vector.Projection(r.Orthogonal[j], b[i])
			if err != nil {
				return Result{}, fmt.Errorf("projecting vector %d onto orthogonal vector %d: %w", i, j, err)
			}
			sum = sum.Add(p)
		}
		r.Orthogonal[i] = b[i].Sub(sum)
	}

	for i, o := range r.Orthogonal {
		n, err := vector.Normalize(o)
		if err != nil {
			return Result{}, fmt.Errorf("normalizing orthogonal vector %d: %w", i, err)
		}
		r.Orthonormal[i] = n
	}

	return r, nil
}

// Round returns a copy of r with both bases rounded to the given number of
// decimal places. Rounding is for display only; verify before rounding.
func (r Result) Round(decimals int) Result {
	return Result{
		Orthogonal:  r.Orthogonal.Round(decimals),
		Orthonormal: r.Orthonormal.Round(decimals),
	}
}
