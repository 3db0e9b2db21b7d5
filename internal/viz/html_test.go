package viz

import (
	"strings"
	"testing"
)

func sampleFigure() *Figure {
	return &Figure{
		RunID:       "3f1c2a9e-0000-4000-8000-000000000000",
		Seed:        42,
		LowerBound:  -10,
		UpperBound:  10,
		Initial:     Matrix{{2, 0, 0}, {1, 3, 0}, {0, 0, 4}},
		Orthogonal:  Matrix{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}},
		Orthonormal: Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
}

func TestGenerateHTML(t *testing.T) {
	html, err := GenerateHTML(sampleFigure(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}

	wants := []string{
		"<!DOCTYPE html>",
		"Gram-Schmidt 3f1c2a9e-0000-4000-8000-000000000000",
		"seed 42",
		`id="panel-3d"`,
		`id="panel-xy"`,
		`id="panel-xz"`,
		`id="panel-yz"`,
		"Origin (0, 0, 0)",
		`marker-end="url(#arrow-green)"`,
		`marker-end="url(#arrow-red)"`,
		"Orthonormal vectors:",
		">Orthogonal</text>",
		">Initial</text>",
		">Origin</text>",
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("GenerateHTML() output missing %q", want)
		}
	}
}

func TestGenerateHTML_PlanesHaveNoArrows(t *testing.T) {
	html, err := GenerateHTML(sampleFigure(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}

	start := strings.Index(html, `id="panel-xy"`)
	if start < 0 {
		t.Fatal("missing XY panel")
	}
	end := strings.Index(html[start:], "</svg>")
	if strings.Contains(html[start:start+end], "marker-end") {
		t.Error("planar projections should draw plain lines")
	}
}

func TestGenerateHTML_NilFigure(t *testing.T) {
	_, err := GenerateHTML(nil, DefaultOptions())
	if err == nil {
		t.Error("GenerateHTML(nil) should return error")
	}
}

func TestGenerateHTML_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*HTMLOptions)
	}{
		{"zero width", func(o *HTMLOptions) { o.Width = 0 }},
		{"negative height", func(o *HTMLOptions) { o.Height = -1 }},
		{"elevation too high", func(o *HTMLOptions) { o.Camera.Elevation = 91 }},
		{"elevation too low", func(o *HTMLOptions) { o.Camera.Elevation = -91 }},
		{"negative decimals", func(o *HTMLOptions) { o.Decimals = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			if _, err := GenerateHTML(sampleFigure(), opts); err == nil {
				t.Error("GenerateHTML() should return error")
			}
		})
	}
}

func TestFamilies(t *testing.T) {
	fig := sampleFigure()
	families := fig.Families()

	if len(families) != 3 {
		t.Fatalf("Families() returned %d families, want 3", len(families))
	}

	tests := []struct {
		name    string
		color   string
		labeled bool
		vectors Matrix
	}{
		{"Initial", ColorInitial, true, fig.Initial},
		{"Orthogonal", ColorOrthogonal, true, fig.Orthogonal},
		{"Orthonormal", ColorOrthonormal, false, fig.Orthonormal},
	}
	for i, tt := range tests {
		f := families[i]
		if f.Name != tt.name || f.Color != tt.color || f.Labeled != tt.labeled || f.Vectors != tt.vectors {
			t.Errorf("Families()[%d] = %+v, want name=%s color=%s labeled=%v", i, f, tt.name, tt.color, tt.labeled)
		}
	}

	legend := fig.Legend()
	if len(legend) != 4 || legend[0].Name != "Origin" || legend[3].Name != "Orthonormal" {
		t.Errorf("Legend() = %+v, want Origin followed by the three families", legend)
	}
}
