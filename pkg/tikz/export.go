// Package tikz converts a traced figure into a TikZ picture.
package tikz

import (
	"fmt"
	"strings"

	"github.com/philipparndt/geotrace/pkg/figure"
	"github.com/philipparndt/geotrace/pkg/geometry"
)

const (
	// DefaultFilename is the file name used when the listing is saved
	DefaultFilename = "geotrace_output.tex"

	// ArcRadius is the radius of angle marks in output units
	ArcRadius = 0.5
	// DotRadius is the radius of point markers
	DotRadius = "1.1pt"
)

// Config holds the export parameters
type Config struct {
	CanvasWidth  float64 // canvas width in pixels
	CanvasHeight float64 // canvas height in pixels
	Width        float64 // output width in TikZ units
	LineWidth    float64 // stroke width in pt
	ShowPoints   bool
	ShowLabels   bool
}

// DefaultConfig returns the export defaults for a canvas of the given size
func DefaultConfig(canvasWidth, canvasHeight float64) Config {
	return Config{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Width:        10,
		LineWidth:    0.8,
	}
}

// Scale returns the factor from canvas pixels to output units
func (c Config) Scale() float64 {
	if c.CanvasWidth <= 0 {
		return 0
	}
	return c.Width / c.CanvasWidth
}

// ToOutput maps a canvas position into output space, flipping the y axis
func (c Config) ToOutput(p geometry.Vector2) geometry.Vector2 {
	s := c.Scale()
	return geometry.NewVector2(p.X*s, (c.CanvasHeight-p.Y)*s)
}

// Source is the read-only view of a figure the exporter needs
type Source interface {
	figure.Resolver
	Points() []figure.Point
	Shapes() []figure.Shape
}

// Lines renders the figure as TikZ source lines
func Lines(src Source, cfg Config) []string {
	points := src.Points()

	lines := []string{
		"% geotrace export",
		"% coordinates in TikZ units, origin at the bottom-left corner of the canvas",
		`\begin{tikzpicture}[line cap=round,line join=round,>=latex]`,
		fmt.Sprintf(`  \tikzset{every path/.style={line width=%spt}}`, FormatNumber(cfg.LineWidth)),
	}

	for _, p := range points {
		t := cfg.ToOutput(p.Position())
		lines = append(lines, fmt.Sprintf(`  \coordinate (%s) at (%s,%s);`,
			SanitizeName(p.Name), FormatNumber(t.X), FormatNumber(t.Y)))
	}

	for _, shape := range src.Shapes() {
		pts, ok := figure.ResolveAll(src, shape)
		if !ok {
			continue
		}
		if line, ok := drawShape(shape.Kind(), pts, cfg); ok {
			lines = append(lines, line)
		}
	}

	if cfg.ShowPoints || cfg.ShowLabels {
		for _, p := range points {
			lines = append(lines, pointMarker(p, cfg))
		}
	}

	return append(lines, `\end{tikzpicture}`)
}

// Export renders the figure as a single TikZ listing
func Export(src Source, cfg Config) string {
	return strings.Join(Lines(src, cfg), "\n")
}

func drawShape(kind figure.ShapeKind, pts []figure.Point, cfg Config) (string, bool) {
	switch kind {
	case figure.KindSegment:
		return fmt.Sprintf(`  \draw (%s) -- (%s);`, SanitizeName(pts[0].Name), SanitizeName(pts[1].Name)), true

	case figure.KindPolygon:
		if len(pts) < 3 {
			return "", false
		}
		refs := make([]string, len(pts))
		for i, p := range pts {
			refs[i] = "(" + SanitizeName(p.Name) + ")"
		}
		return fmt.Sprintf(`  \draw %s -- cycle;`, strings.Join(refs, " -- ")), true

	case figure.KindCircle:
		center := cfg.ToOutput(pts[0].Position())
		on := cfg.ToOutput(pts[1].Position())
		return fmt.Sprintf(`  \draw (%s) circle[radius=%s];`,
			SanitizeName(pts[0].Name), FormatNumber(center.Distance(on))), true

	case figure.KindAngle:
		start, end := angleArc(pts[0], pts[1], pts[2], cfg)
		r := FormatNumber(ArcRadius)
		return fmt.Sprintf(`  \draw[blue] (%s) ++(%s:%s) arc[start angle=%s, end angle=%s, radius=%s];`,
			SanitizeName(pts[1].Name), FormatNumber(start), r, FormatNumber(start), FormatNumber(end), r), true
	}
	return "", false
}

// angleArc resolves the arc of angle ABC in output space. The y flip
// mirrors rotation, so bearings must be taken after the transform.
func angleArc(a, b, c figure.Point, cfg Config) (start, end float64) {
	ta := cfg.ToOutput(a.Position())
	tb := cfg.ToOutput(b.Position())
	tc := cfg.ToOutput(c.Position())

	start, end, _ = geometry.MinorArc(tb.Bearing(ta), tb.Bearing(tc))
	return start, end
}

func pointMarker(p figure.Point, cfg Config) string {
	cmd := `\path`
	if cfg.ShowPoints {
		cmd = `\fill`
	}
	node := ""
	if cfg.ShowLabels {
		node = fmt.Sprintf(` node[above right] {$%s$}`, EscapeLabel(p.Name))
	}
	return fmt.Sprintf(`  %s (%s) circle (%s)%s;`, cmd, SanitizeName(p.Name), DotRadius, node)
}
