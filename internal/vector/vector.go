// Package vector provides the three-dimensional linear algebra primitives
// used by the Gram-Schmidt procedure.
package vector

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned when an operation would divide by the
// magnitude of a zero vector, which has no direction.
var ErrDivideByZero = errors.New("division by zero: zero vector has no direction")

// Vector is an ordered triple of real numbers.
type Vector [3]float64

// Dot returns the dot product of v and u.
func (v Vector) Dot(u Vector) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Add returns v + u.
func (v Vector) Add(u Vector) Vector {
	return Vector{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v - u.
func (v Vector) Sub(u Vector) Vector {
	return Vector{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}

// IsZero reports whether every component of v is exactly zero.
func (v Vector) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Round returns v with each component rounded to the given number of
// decimal places. Negative zero is normalized to zero.
func (v Vector) Round(decimals int) Vector {
	return Vector{round(v[0], decimals), round(v[1], decimals), round(v[2], decimals)}
}

// Magnitude returns the Euclidean norm of v.
func Magnitude(v Vector) float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// Returns ErrDivideByZero if v is the zero vector.
func Normalize(v Vector) (Vector, error) {
	mag := Magnitude(v)
	if mag == 0 {
		return Vector{}, ErrDivideByZero
	}
	return Vector{v[0] / mag, v[1] / mag, v[2] / mag}, nil
}

// Projection returns the orthogonal projection of v onto the line spanned
// by u, computed as (v·u / u·u) u.
// Returns ErrDivideByZero if u is the zero vector.
func Projection(u, v Vector) (Vector, error) {
	denom := u.Dot(u)
	if denom == 0 {
		return Vector{}, ErrDivideByZero
	}
	return u.Scale(v.Dot(u) / denom), nil
}

func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(x*p) / p
	if r == 0 {
		return 0
	}
	return r
}
