package orthogonal

import (
	"testing"

	"github.com/matsen/gramschmidt/internal/generator"
	"github.com/matsen/gramschmidt/internal/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBasisInDelta(t *testing.T, want, got vector.Basis, delta float64) {
	t.Helper()
	for i := range want {
		for k := range want[i] {
			assert.InDelta(t, want[i][k], got[i][k], delta, "vector %d component %d", i, k)
		}
	}
}

var identity = vector.Basis{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func TestGramSchmidt_KnownBases(t *testing.T) {
	tests := []struct {
		name            string
		basis           vector.Basis
		wantOrthogonal  vector.Basis
		wantOrthonormal vector.Basis
	}{
		{
			name:            "unit triangular",
			basis:           vector.Basis{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
			wantOrthogonal:  identity,
			wantOrthonormal: identity,
		},
		{
			name:            "scaled axes",
			basis:           vector.Basis{{2, 0, 0}, {1, 3, 0}, {0, 0, 4}},
			wantOrthogonal:  vector.Basis{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}},
			wantOrthonormal: identity,
		},
		{
			name:            "already orthonormal",
			basis:           identity,
			wantOrthogonal:  identity,
			wantOrthonormal: identity,
		},
		{
			name:            "reversed order",
			basis:           vector.Basis{{1, 1, 1}, {0, 1, 1}, {0, 0, 1}},
			wantOrthogonal:  vector.Basis{{1, 1, 1}, {-2.0 / 3, 1.0 / 3, 1.0 / 3}, {0, -0.5, 0.5}},
			wantOrthonormal: vector.Basis{{1 / sqrt3, 1 / sqrt3, 1 / sqrt3}, {-2 / sqrt6, 1 / sqrt6, 1 / sqrt6}, {0, -1 / sqrt2, 1 / sqrt2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GramSchmidt(tt.basis)
			require.NoError(t, err)

			assertBasisInDelta(t, tt.wantOrthogonal, got.Orthogonal, 1e-12)
			assertBasisInDelta(t, tt.wantOrthonormal, got.Orthonormal, 1e-12)
		})
	}
}

const (
	sqrt2 = 1.4142135623730951
	sqrt3 = 1.7320508075688772
	sqrt6 = 2.449489742783178
)

func TestGramSchmidt_RandomBasesAreOrthonormal(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		b, err := generator.New(generator.NewSource(seed)).Generate(-10, 10)
		require.NoError(t, err)

		r, err := GramSchmidt(b)
		require.NoError(t, err, "seed %d basis %v", seed, b)

		for i := range r.Orthogonal {
			assert.False(t, r.Orthogonal[i].IsZero(), "seed %d: orthogonal vector %d is zero", seed, i)
			for j := 0; j < i; j++ {
				assert.InDelta(t, 0, r.Orthogonal[i].Dot(r.Orthogonal[j]), DefaultTolerance,
					"seed %d: O[%d]·O[%d]", seed, i, j)
				assert.InDelta(t, 0, r.Orthonormal[i].Dot(r.Orthonormal[j]), DefaultTolerance,
					"seed %d: N[%d]·N[%d]", seed, i, j)
			}
			assert.InDelta(t, 1, vector.Magnitude(r.Orthonormal[i]), DefaultTolerance,
				"seed %d: |N[%d]|", seed, i)

			// N[i] is O[i] scaled by 1/|O[i]|.
			scaled := r.Orthogonal[i].Scale(1 / vector.Magnitude(r.Orthogonal[i]))
			for k := range scaled {
				assert.InDelta(t, scaled[k], r.Orthonormal[i][k], 1e-12)
			}
		}
		assert.NoError(t, Verify(r, DefaultTolerance), "seed %d", seed)
	}
}

func TestGramSchmidt_WideBoundsVerify(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		b, err := generator.New(generator.NewSource(seed)).Generate(-generator.MaxBound, generator.MaxBound)
		require.NoError(t, err)

		r, err := GramSchmidt(b)
		require.NoError(t, err, "seed %d", seed)
		assert.NoError(t, Verify(r, DefaultTolerance), "seed %d", seed)
	}
}

func TestGramSchmidt_FirstVectorUnchanged(t *testing.T) {
	b := vector.Basis{{3, -1, 2}, {4, 0, 1}, {-2, 5, 7}}
	r, err := GramSchmidt(b)
	require.NoError(t, err)

	assert.Equal(t, b[0], r.Orthogonal[0])
}

func TestGramSchmidt_DoesNotMutateInput(t *testing.T) {
	b := vector.Basis{{3, -1, 2}, {4, 0, 1}, {-2, 5, 7}}
	orig := b

	_, err := GramSchmidt(b)
	require.NoError(t, err)

	assert.Equal(t, orig, b)
}

func TestGramSchmidt_ZeroFirstVector(t *testing.T) {
	_, err := GramSchmidt(vector.Basis{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	assert.ErrorIs(t, err, vector.ErrDivideByZero)
}

func TestGramSchmidt_DependentBasis(t *testing.T) {
	// Third vector lies in the span of the first two, so O[2] is zero.
	_, err := GramSchmidt(vector.Basis{{1, 0, 0}, {0, 1, 0}, {2, 3, 0}})
	require.ErrorIs(t, err, vector.ErrDivideByZero)
	assert.Contains(t, err.Error(), "normalizing orthogonal vector 2")
}

func TestResult_Round(t *testing.T) {
	r, err := GramSchmidt(vector.Basis{{1, 1, 1}, {0, 1, 1}, {0, 0, 1}})
	require.NoError(t, err)

	rounded := r.Round(3)
	assert.Equal(t, vector.Vector{-0.667, 0.333, 0.333}, rounded.Orthogonal[1])
	assert.Equal(t, vector.Vector{0.577, 0.577, 0.577}, rounded.Orthonormal[0])
	assert.Equal(t, vector.Vector{0, -0.707, 0.707}, rounded.Orthonormal[2])
}
