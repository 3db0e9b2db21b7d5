// Package viz presents Gram-Schmidt results: a console log and a
// self-contained HTML figure with a 3D view and three planar projections.
//
// The package works on plain arrays so it can render any run without
// depending on how the bases were computed.
package viz

// Matrix is three vectors stored as rows.
type Matrix = [3][3]float64

// Figure contains all data needed to render a run.
type Figure struct {
	RunID      string `json:"run_id"`
	Seed       uint64 `json:"seed"`
	LowerBound int    `json:"lower_bound"`
	UpperBound int    `json:"upper_bound"`

	Initial     Matrix `json:"initial"`
	Orthogonal  Matrix `json:"orthogonal"`
	Orthonormal Matrix `json:"orthonormal"`
}

// Family is one set of vectors drawn with a shared style.
type Family struct {
	Name    string
	Color   string
	Vectors Matrix
	Width   float64 // Stroke width of the vector lines
	Markers bool    // Draw a dot at each vector tip
	Labeled bool    // Label each tip with its 1-based index
}

// Family colors
const (
	ColorOrigin      = "black"
	ColorInitial     = "green"
	ColorOrthogonal  = "blue"
	ColorOrthonormal = "red"
)

// Families returns the vector families in drawing order.
func (f *Figure) Families() []Family {
	return []Family{
		{Name: "Initial", Color: ColorInitial, Vectors: f.Initial, Width: 1, Markers: true, Labeled: true},
		{Name: "Orthogonal", Color: ColorOrthogonal, Vectors: f.Orthogonal, Width: 1, Markers: true, Labeled: true},
		{Name: "Orthonormal", Color: ColorOrthonormal, Vectors: f.Orthonormal, Width: 3},
	}
}

// LegendEntry is one row of the 3D panel legend.
type LegendEntry struct {
	Name  string
	Color string
}

// Legend returns the legend rows: the origin followed by each family.
func (f *Figure) Legend() []LegendEntry {
	entries := []LegendEntry{{Name: "Origin", Color: ColorOrigin}}
	for _, fam := range f.Families() {
		entries = append(entries, LegendEntry{Name: fam.Name, Color: fam.Color})
	}
	return entries
}
