package vector

// Basis is an ordered set of three vectors. Index order determines the
// projection order used by Gram-Schmidt.
type Basis [3]Vector

// BasisFromArray builds a Basis from a row-major 3×3 array.
func BasisFromArray(a [3][3]float64) Basis {
	return Basis{Vector(a[0]), Vector(a[1]), Vector(a[2])}
}

// Array returns the basis as a row-major 3×3 array.
func (b Basis) Array() [3][3]float64 {
	return [3][3]float64{b[0], b[1], b[2]}
}

// Determinant returns the determinant of the matrix whose rows are the
// basis vectors. A non-zero determinant means the vectors are linearly
// independent.
func (b Basis) Determinant() float64 {
	return b[0][0]*(b[1][1]*b[2][2]-b[1][2]*b[2][1]) -
		b[0][1]*(b[1][0]*b[2][2]-b[1][2]*b[2][0]) +
		b[0][2]*(b[1][0]*b[2][1]-b[1][1]*b[2][0])
}

// Round returns a copy of b with every component rounded to the given
// number of decimal places.
func (b Basis) Round(decimals int) Basis {
	return Basis{b[0].Round(decimals), b[1].Round(decimals), b[2].Round(decimals)}
}
