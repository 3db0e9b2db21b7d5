package viz

import (
	"math"
	"strconv"
	"strings"
)

// Panel is one drawing area of the figure, in pixel coordinates with the
// origin at the top-left corner.
type Panel struct {
	ID     string
	Title  string
	Width  float64
	Height float64
	Arrows bool // Vector lines end in arrowheads

	Grid       []Line
	Ticks      []Label
	Axes       []Line
	Lines      []Line
	Markers    []Marker
	Labels     []Label
	AxisLabels []Label
	Legend     []LegendEntry
}

// Line is a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Width          float64
}

// Marker is a filled dot.
type Marker struct {
	X, Y, R float64
	Color   string
}

// Label is a piece of text anchored at a point.
type Label struct {
	X, Y   float64
	Text   string
	Anchor string // SVG text-anchor: start, middle or end
}

const (
	panelMargin  = 36.0
	gridColor    = "#dddddd"
	axisColor    = "#999999"
	originRadius = 5.0
	tipRadius    = 3.0
	targetTicks  = 5
)

// frame maps data coordinates into a panel, scaling both axes equally so
// right angles stay right angles on screen.
type frame struct {
	minX, maxX, minY, maxY float64
	scale                  float64
	offX, offY             float64
}

func newFrame(points []Point, width, height, margin float64) frame {
	f := frame{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}
	for _, p := range points {
		f.minX = math.Min(f.minX, p.X)
		f.maxX = math.Max(f.maxX, p.X)
		f.minY = math.Min(f.minY, p.Y)
		f.maxY = math.Max(f.maxY, p.Y)
	}
	if len(points) == 0 {
		f.minX, f.maxX, f.minY, f.maxY = 0, 0, 0, 0
	}

	span := math.Max(f.maxX-f.minX, f.maxY-f.minY)
	if span == 0 {
		span = 2
	}
	pad := 0.1 * span
	f.minX, f.maxX = f.minX-pad, f.maxX+pad
	f.minY, f.maxY = f.minY-pad, f.maxY+pad

	innerW := width - 2*margin
	innerH := height - 2*margin
	dx := f.maxX - f.minX
	dy := f.maxY - f.minY
	f.scale = math.Min(innerW/dx, innerH/dy)
	f.offX = margin + (innerW-dx*f.scale)/2
	f.offY = margin + (innerH-dy*f.scale)/2
	return f
}

// point converts a data point to pixels. Pixel Y grows downward.
func (f frame) point(p Point) Point {
	return Point{
		X: f.offX + (p.X-f.minX)*f.scale,
		Y: f.offY + (f.maxY-p.Y)*f.scale,
	}
}

// grid returns grid lines and tick labels at round values inside the frame.
func (f frame) grid() ([]Line, []Label) {
	var lines []Line
	var labels []Label

	stepX := niceStep(f.maxX - f.minX)
	for _, x := range ticks(f.minX, f.maxX, stepX) {
		top := f.point(Point{X: x, Y: f.maxY})
		bottom := f.point(Point{X: x, Y: f.minY})
		lines = append(lines, Line{X1: top.X, Y1: top.Y, X2: bottom.X, Y2: bottom.Y, Color: gridColor, Width: 1})
		labels = append(labels, Label{X: bottom.X, Y: bottom.Y + 12, Text: formatTick(x, stepX), Anchor: "middle"})
	}

	stepY := niceStep(f.maxY - f.minY)
	for _, y := range ticks(f.minY, f.maxY, stepY) {
		left := f.point(Point{X: f.minX, Y: y})
		right := f.point(Point{X: f.maxX, Y: y})
		lines = append(lines, Line{X1: left.X, Y1: left.Y, X2: right.X, Y2: right.Y, Color: gridColor, Width: 1})
		labels = append(labels, Label{X: left.X - 4, Y: left.Y + 4, Text: formatTick(y, stepY), Anchor: "end"})
	}

	return lines, labels
}

// niceStep returns a 1, 2 or 5 times a power of ten close to span/targetTicks.
func niceStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / targetTicks
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

// ticks lists the multiples of step within [lo, hi].
func ticks(lo, hi, step float64) []float64 {
	var out []float64
	for i := math.Ceil(lo / step); i <= math.Floor(hi/step); i++ {
		out = append(out, i*step)
	}
	return out
}

func formatTick(v, step float64) string {
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step)))
	}
	return formatNumber(v, decimals)
}

// formatNumber formats x with a fixed number of decimals, without a sign on zero.
func formatNumber(x float64, decimals int) string {
	s := strconv.FormatFloat(x, 'f', decimals, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		return s[1:]
	}
	return s
}

// planePanel draws every family projected onto plane, as lines from the origin.
func planePanel(fig *Figure, plane Plane, width, height float64) Panel {
	families := fig.Families()

	points := []Point{{}}
	for _, fam := range families {
		for _, v := range fam.Vectors {
			points = append(points, plane.Project(v))
		}
	}
	f := newFrame(points, width, height, panelMargin)

	p := Panel{
		ID:     "panel-" + strings.ToLower(plane.Name),
		Title:  plane.Name,
		Width:  width,
		Height: height,
	}
	p.Grid, p.Ticks = f.grid()

	origin := f.point(Point{})
	p.Markers = append(p.Markers, Marker{X: origin.X, Y: origin.Y, R: originRadius, Color: ColorOrigin})
	for _, fam := range families {
		for i, v := range fam.Vectors {
			addVector(&p, fam, i, origin, f.point(plane.Project(v)))
		}
	}

	p.AxisLabels = []Label{
		{X: width / 2, Y: height - 4, Text: plane.ULabel, Anchor: "middle"},
		{X: 10, Y: height / 2, Text: plane.VLabel, Anchor: "middle"},
	}
	return p
}

// spacePanel draws every family in 3D as seen from cam, with coordinate axes.
func spacePanel(fig *Figure, cam Camera, width, height float64) Panel {
	families := fig.Families()
	ext := extent(fig)

	axisNames := [3]string{"X", "Y", "Z"}
	var axisEnds [3][2]Point
	points := []Point{{}}
	for k := range axisNames {
		var pos, neg [3]float64
		pos[k], neg[k] = ext, -ext
		axisEnds[k] = [2]Point{cam.Project(neg), cam.Project(pos)}
		points = append(points, axisEnds[k][0], axisEnds[k][1])
	}
	for _, fam := range families {
		for _, v := range fam.Vectors {
			points = append(points, cam.Project(v))
		}
	}
	f := newFrame(points, width, height, panelMargin)

	p := Panel{
		ID:     "panel-3d",
		Title:  "3D",
		Width:  width,
		Height: height,
		Arrows: true,
	}

	for k, name := range axisNames {
		from, to := f.point(axisEnds[k][0]), f.point(axisEnds[k][1])
		p.Axes = append(p.Axes, Line{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y, Color: axisColor, Width: 1})
		p.AxisLabels = append(p.AxisLabels, Label{X: to.X + 6, Y: to.Y + 4, Text: name, Anchor: "start"})
	}

	origin := f.point(Point{})
	p.Markers = append(p.Markers, Marker{X: origin.X, Y: origin.Y, R: originRadius, Color: ColorOrigin})
	p.Labels = append(p.Labels, Label{X: origin.X - 8, Y: origin.Y + 16, Text: "Origin (0, 0, 0)", Anchor: "end"})

	for _, fam := range families {
		for i, v := range fam.Vectors {
			addVector(&p, fam, i, origin, f.point(cam.Project(v)))
		}
	}
	return p
}

func addVector(p *Panel, fam Family, index int, origin, tip Point) {
	p.Lines = append(p.Lines, Line{X1: origin.X, Y1: origin.Y, X2: tip.X, Y2: tip.Y, Color: fam.Color, Width: fam.Width})
	if fam.Markers {
		p.Markers = append(p.Markers, Marker{X: tip.X, Y: tip.Y, R: tipRadius, Color: fam.Color})
	}
	if fam.Labeled {
		p.Labels = append(p.Labels, Label{X: tip.X + 5, Y: tip.Y - 5, Text: strconv.Itoa(index + 1), Anchor: "start"})
	}
}

// extent returns the largest absolute coordinate in the figure, at least 1.
func extent(fig *Figure) float64 {
	ext := 1.0
	for _, m := range []Matrix{fig.Initial, fig.Orthogonal, fig.Orthonormal} {
		for _, v := range m {
			for _, x := range v {
				ext = math.Max(ext, math.Abs(x))
			}
		}
	}
	return ext
}
