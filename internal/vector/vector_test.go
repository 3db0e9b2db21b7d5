package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-12

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"3-4-5 triangle", Vector{3, 4, 0}, 5},
		{"zero vector", Vector{}, 0},
		{"unit z", Vector{0, 0, 1}, 1},
		{"negative components", Vector{-2, -3, -6}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Magnitude(tt.v), tolerance)
		})
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize(Vector{3, 4, 0})
	require.NoError(t, err)

	assert.InDelta(t, 0.6, got[0], tolerance)
	assert.InDelta(t, 0.8, got[1], tolerance)
	assert.InDelta(t, 0.0, got[2], tolerance)
	assert.InDelta(t, 1.0, Magnitude(got), tolerance)
}

func TestNormalize_ZeroVector(t *testing.T) {
	_, err := Normalize(Vector{})
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestProjection(t *testing.T) {
	tests := []struct {
		name string
		u, v Vector
		want Vector
	}{
		{"onto x axis", Vector{1, 0, 0}, Vector{3, 4, 5}, Vector{3, 0, 0}},
		{"scaled target", Vector{2, 0, 0}, Vector{3, 4, 5}, Vector{3, 0, 0}},
		{"orthogonal vectors", Vector{0, 1, 0}, Vector{1, 0, 1}, Vector{0, 0, 0}},
		{"parallel vectors", Vector{1, 1, 1}, Vector{2, 2, 2}, Vector{2, 2, 2}},
		{"diagonal", Vector{1, 1, 0}, Vector{1, 0, 0}, Vector{0.5, 0.5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Projection(tt.u, tt.v)
			require.NoError(t, err)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], tolerance, "component %d", i)
			}
		})
	}
}

func TestProjection_ZeroTarget(t *testing.T) {
	_, err := Projection(Vector{}, Vector{1, 2, 3})
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestProjection_ResidualIsOrthogonal(t *testing.T) {
	u := Vector{1, -2, 3}
	v := Vector{4, 5, -6}

	p, err := Projection(u, v)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, v.Sub(p).Dot(u), 1e-9)
}

func TestRound(t *testing.T) {
	v := Vector{1.23456, -0.0004, 2.0006}
	got := v.Round(3)

	assert.Equal(t, Vector{1.235, 0, 2.001}, got)
	assert.False(t, math.Signbit(got[1]), "rounded negative zero should be +0")
}

func TestArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	assert.Equal(t, Vector{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vector{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vector{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.True(t, Vector{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		b    Basis
		want float64
	}{
		{"identity", Basis{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"triangular", Basis{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, 1},
		{"diagonal", Basis{{2, 0, 0}, {1, 3, 0}, {0, 0, 4}}, 24},
		{"repeated row", Basis{{1, 2, 3}, {1, 2, 3}, {4, 5, 6}}, 0},
		{"linear combination", Basis{{1, 2, 3}, {4, 5, 6}, {5, 7, 9}}, 0},
		{"swapped rows", Basis{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.b.Determinant(), tolerance)
		})
	}
}

func TestBasisArrayRoundTrip(t *testing.T) {
	a := [3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	b := BasisFromArray(a)

	assert.Equal(t, Vector{4, 5, 6}, b[1])
	assert.Equal(t, a, b.Array())
}
