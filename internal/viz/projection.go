package viz

import "math"

// Point is a position on a 2D drawing surface.
type Point struct {
	X, Y float64
}

// Plane selects two coordinate axes for an orthographic side view.
type Plane struct {
	Name   string
	U, V   int // Indices of the horizontal and vertical axes
	ULabel string
	VLabel string
}

// Planes are the side views drawn next to the 3D panel, top to bottom.
var Planes = []Plane{
	{Name: "XY", U: 0, V: 1, ULabel: "X", VLabel: "Y"},
	{Name: "XZ", U: 0, V: 2, ULabel: "X", VLabel: "Z"},
	{Name: "YZ", U: 1, V: 2, ULabel: "Y", VLabel: "Z"},
}

// Project drops the coordinate not in the plane.
func (p Plane) Project(v [3]float64) Point {
	return Point{X: v[p.U], Y: v[p.V]}
}

// Camera is an orthographic viewpoint for the 3D panel. Angles are in
// degrees; azimuth rotates about the Z axis and elevation tilts above the
// XY plane.
type Camera struct {
	Azimuth   float64
	Elevation float64
}

// DefaultCamera matches the usual default view of 3D plotting tools.
var DefaultCamera = Camera{Azimuth: -60, Elevation: 30}

// Project maps v onto the camera's screen plane. Screen Y points up.
func (c Camera) Project(v [3]float64) Point {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180

	right := [3]float64{-math.Sin(az), math.Cos(az), 0}
	up := [3]float64{-math.Sin(el) * math.Cos(az), -math.Sin(el) * math.Sin(az), math.Cos(el)}

	return Point{
		X: v[0]*right[0] + v[1]*right[1] + v[2]*right[2],
		Y: v[0]*up[0] + v[1]*up[1] + v[2]*up[2],
	}
}
