package viz

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("viz").Funcs(template.FuncMap{
		"num": func(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) },
		"inc": func(i int) int { return i + 1 },

		// Legend rows stack down the top-right corner of a panel.
		"legendX":     func(w float64) string { return strconv.FormatFloat(w-100, 'f', 2, 64) },
		"legendTextX": func(w float64) string { return strconv.FormatFloat(w-90, 'f', 2, 64) },
		"legendY":     func(i int) int { return 20 + 16*i },
		"legendTextY": func(i int) int { return 24 + 16*i },
	}).Parse(htmlTemplate))
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Camera   Camera  // Viewpoint of the 3D panel
	Width    float64 // Figure width in pixels
	Height   float64 // Figure height in pixels
	Decimals int     // Decimal places in the summary tables
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{
		Camera:   DefaultCamera,
		Width:    1200,
		Height:   800,
		Decimals: 3,
	}
}

// GenerateHTML generates a self-contained HTML page showing the figure: a
// summary table and a 3D view on the left, XY, XZ and YZ projections on the
// right.
func GenerateHTML(fig *Figure, opts HTMLOptions) (string, error) {
	if fig == nil {
		return "", fmt.Errorf("figure cannot be nil")
	}
	if err := validateOptions(opts); err != nil {
		return "", err
	}

	// Three rows, two columns; the 3D view spans the lower two rows.
	colW := opts.Width / 2
	rowH := opts.Height / 3

	planes := make([]Panel, 0, len(Planes))
	for _, plane := range Planes {
		planes = append(planes, planePanel(fig, plane, colW, rowH))
	}

	var summary bytes.Buffer
	if err := WriteLog(&summary, fig, opts.Decimals); err != nil {
		return "", err
	}

	space := spacePanel(fig, opts.Camera, colW, 2*rowH)
	space.Legend = fig.Legend()

	data := templateData{
		Figure:  fig,
		Summary: summary.String(),
		Space:   space,
		Planes:  planes,
		Width:   opts.Width,
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// validateOptions checks that the figure can be laid out.
func validateOptions(opts HTMLOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid figure size %gx%g: width and height must be positive", opts.Width, opts.Height)
	}
	if opts.Camera.Elevation < -90 || opts.Camera.Elevation > 90 {
		return fmt.Errorf("invalid camera elevation %g: must be between -90 and 90", opts.Camera.Elevation)
	}
	if opts.Decimals < 0 {
		return fmt.Errorf("invalid decimals %d: must not be negative", opts.Decimals)
	}
	return nil
}

// templateData holds data for the HTML template.
type templateData struct {
	Figure  *Figure
	Summary string
	Space   Panel
	Planes  []Panel
	Width   float64
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Gram-Schmidt {{.Figure.RunID}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 16px;
      background: #f5f5f5;
    }
    .figure {
      display: grid;
      grid-template-columns: 1fr 1fr;
      grid-template-rows: repeat(3, auto);
      gap: 8px;
      margin: 0 auto;
      background: white;
      padding: 8px;
    }
    .summary {
      grid-column: 1;
      grid-row: 1;
      overflow: auto;
    }
    .summary pre {
      font-size: 12px;
      margin: 0;
    }
    .summary .meta {
      font-size: 11px;
      color: #888;
      margin-bottom: 6px;
    }
    #panel-3d-cell {
      grid-column: 1;
      grid-row: 2 / span 2;
    }
    svg text {
      font-size: 11px;
      fill: #333;
    }
    svg .title {
      font-size: 12px;
      font-weight: bold;
    }
  </style>
</head>
<body>
  <div class="figure" style="max-width: {{num .Width}}px">
    <div class="summary">
      <div class="meta">run {{.Figure.RunID}} &middot; seed {{.Figure.Seed}} &middot; bounds [{{.Figure.LowerBound}}, {{.Figure.UpperBound}}]</div>
      <pre>{{.Summary}}</pre>
    </div>
    <div id="panel-3d-cell">
      {{template "panel" .Space}}
    </div>
    {{range $i, $p := .Planes}}
    <div style="grid-column: 2; grid-row: {{inc $i}}">
      {{template "panel" $p}}
    </div>
    {{end}}
  </div>
</body>
</html>
{{define "panel"}}
<svg id="{{.ID}}" xmlns="http://www.w3.org/2000/svg" width="{{num .Width}}" height="{{num .Height}}" viewBox="0 0 {{num .Width}} {{num .Height}}">
  {{if .Arrows}}
  <defs>
    <marker id="arrow-green" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="green"/></marker>
    <marker id="arrow-blue" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="blue"/></marker>
    <marker id="arrow-red" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="4" markerHeight="4" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="red"/></marker>
  </defs>
  {{end}}
  <text class="title" x="8" y="16">{{.Title}}</text>
  {{range .Grid}}<line x1="{{num .X1}}" y1="{{num .Y1}}" x2="{{num .X2}}" y2="{{num .Y2}}" stroke="{{.Color}}" stroke-width="{{num .Width}}"/>
  {{end}}
  {{range .Ticks}}<text x="{{num .X}}" y="{{num .Y}}" text-anchor="{{.Anchor}}">{{.Text}}</text>
  {{end}}
  {{range .Axes}}<line x1="{{num .X1}}" y1="{{num .Y1}}" x2="{{num .X2}}" y2="{{num .Y2}}" stroke="{{.Color}}" stroke-width="{{num .Width}}" stroke-dasharray="4 3"/>
  {{end}}
  {{$arrows := .Arrows}}
  {{range .Lines}}<line x1="{{num .X1}}" y1="{{num .Y1}}" x2="{{num .X2}}" y2="{{num .Y2}}" stroke="{{.Color}}" stroke-width="{{num .Width}}"{{if $arrows}} marker-end="url(#arrow-{{.Color}})"{{end}}/>
  {{end}}
  {{range .Markers}}<circle cx="{{num .X}}" cy="{{num .Y}}" r="{{num .R}}" fill="{{.Color}}"/>
  {{end}}
  {{range .Labels}}<text x="{{num .X}}" y="{{num .Y}}" text-anchor="{{.Anchor}}">{{.Text}}</text>
  {{end}}
  {{range .AxisLabels}}<text class="axis" x="{{num .X}}" y="{{num .Y}}" text-anchor="{{.Anchor}}">{{.Text}}</text>
  {{end}}
  {{$w := .Width}}
  {{range $i, $e := .Legend}}<g class="legend"><circle cx="{{legendX $w}}" cy="{{legendY $i}}" r="4" fill="{{$e.Color}}"/><text x="{{legendTextX $w}}" y="{{legendTextY $i}}">{{$e.Name}}</text></g>
  {{end}}
</svg>
{{end}}`
