// Package preview rasterizes a session view to an image, mirroring what the
// tracing canvas shows.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/geotrace/internal/app"
	"github.com/philipparndt/geotrace/pkg/figure"
	"github.com/philipparndt/geotrace/pkg/geometry"
)

var (
	inkColor       = color.NRGBA{R: 15, G: 23, B: 42, A: 255}
	accentColor    = color.NRGBA{R: 37, G: 99, B: 235, A: 230}
	draftColor     = color.NRGBA{R: 37, G: 99, B: 235, A: 140}
	gridColor      = color.NRGBA{R: 148, G: 163, B: 184, A: 90}
	highlightColor = accentColor
)

const (
	angleMarkRadius = 26.0 // px
	highlightRadius = 10.0 // px
	dotRadius       = 3.2  // px
	labelOffset     = 8.0  // px, right and up from the point
	dashLength      = 6.0
)

// Options controls the preview
type Options struct {
	Background image.Image // optional reference image
	Opacity    float64     // background opacity in [0, 1]
}

// Render draws the view onto a canvas-sized image
func Render(v app.View, opts Options) *image.RGBA {
	w := int(math.Ceil(v.Canvas.Width))
	h := int(math.Ceil(v.Canvas.Height))
	r := newRaster(w, h)

	r.drawBackground(opts.Background, opts.Opacity)
	if v.Options.SnapToGrid {
		drawGrid(r, w, h)
	}
	drawShapes(r, v)
	drawPoints(r, v)
	return r.img
}

// WritePNG renders the view and encodes it as PNG
func WritePNG(out io.Writer, v app.View, opts Options) error {
	return png.Encode(out, Render(v, opts))
}

func strokeWidth(v app.View, factor, minimum float64) float64 {
	return math.Max(minimum, v.Options.LineWidth*factor)
}

func drawGrid(r *raster, w, h int) {
	for x := 0.0; x <= float64(w); x += app.GridStep {
		r.strokeLine(geometry.NewVector2(x, 0), geometry.NewVector2(x, float64(h)), 1, gridColor)
	}
	for y := 0.0; y <= float64(h); y += app.GridStep {
		r.strokeLine(geometry.NewVector2(0, y), geometry.NewVector2(float64(w), y), 1, gridColor)
	}
}

func positions(pts []figure.Point) []geometry.Vector2 {
	out := make([]geometry.Vector2, len(pts))
	for i, p := range pts {
		out[i] = p.Position()
	}
	return out
}

func drawShapes(r *raster, v app.View) {
	lw := strokeWidth(v, 1.2, 1)

	for _, shape := range v.Figure.Shapes() {
		pts, ok := figure.ResolveAll(v.Figure, shape)
		if !ok {
			continue
		}

		switch s := shape.(type) {
		case figure.Segment:
			r.strokeLine(pts[0].Position(), pts[1].Position(), lw, inkColor)
		case figure.Polygon:
			if len(s.Points) >= 3 {
				r.strokePolyline(positions(pts), true, lw, inkColor)
			}
		case figure.Circle:
			center := pts[0].Position()
			r.strokeCircle(center, center.Distance(pts[1].Position()), lw, inkColor)
		case figure.Angle:
			vertex := pts[1].Position()
			start, end, _ := geometry.MinorArc(vertex.Bearing(pts[0].Position()), vertex.Bearing(pts[2].Position()))
			r.strokePolyline(arcPoints(vertex, angleMarkRadius, start, end), false, strokeWidth(v, 1.6, 2), accentColor)
		}
	}

	if len(v.PolyTemp) > 0 {
		draft := make([]geometry.Vector2, 0, len(v.PolyTemp))
		for _, id := range v.PolyTemp {
			if p, ok := v.Figure.ResolvePoint(id); ok {
				draft = append(draft, p.Position())
			}
		}
		r.dashedPolyline(draft, dashLength, dashLength, lw, draftColor)
	}

	for _, id := range v.Picking {
		if p, ok := v.Figure.ResolvePoint(id); ok {
			r.strokeCircle(p.Position(), highlightRadius, 2, highlightColor)
		}
	}
}

func drawPoints(r *raster, v app.View) {
	if !v.Options.ShowPoints && !v.Options.ShowLabels {
		return
	}
	for _, p := range v.Figure.Points() {
		pos := p.Position()
		if v.Options.ShowPoints {
			r.fillCircle(pos, dotRadius, inkColor)
		}
		if v.Options.ShowLabels {
			r.drawText(pos.Add(geometry.NewVector2(labelOffset, -labelOffset)), p.Name, inkColor)
		}
	}
}
