package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/geotrace/pkg/geometry"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// arcSegments is the number of line segments per full turn
const arcSegments = 96

// raster wraps an RGBA image with anti-aliased drawing primitives
type raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newRaster(width, height int) *raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &raster{
		img: img,
		z:   vector.NewRasterizer(width, height),
	}
}

// fillPolygon fills a closed polygon
func (r *raster) fillPolygon(pts []geometry.Vector2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over

	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(col), image.Point{})
}

// strokeLine draws a line of the given width as a filled quad
func (r *raster) strokeLine(a, b geometry.Vector2, width float64, col color.Color) {
	d := b.Sub(a)
	if d.LengthSquared() == 0 {
		return
	}
	n := d.Normalize().Perp().Mul(width / 2)
	r.fillPolygon([]geometry.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, col)
}

// strokePolyline draws connected line segments, optionally closing the path
func (r *raster) strokePolyline(pts []geometry.Vector2, closed bool, width float64, col color.Color) {
	for i := 0; i+1 < len(pts); i++ {
		r.strokeLine(pts[i], pts[i+1], width, col)
	}
	if closed && len(pts) > 2 {
		r.strokeLine(pts[len(pts)-1], pts[0], width, col)
	}
}

// dashedPolyline draws an open polyline with a dash/gap pattern
func (r *raster) dashedPolyline(pts []geometry.Vector2, dash, gap, width float64, col color.Color) {
	period := dash + gap
	offset := 0.0 // distance into the current period
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		length := a.Distance(b)
		if length == 0 {
			continue
		}
		dir := b.Sub(a).Mul(1 / length)

		for t := 0.0; t < length; {
			if offset < dash {
				end := math.Min(length, t+dash-offset)
				r.strokeLine(a.Add(dir.Mul(t)), a.Add(dir.Mul(end)), width, col)
				offset += end - t
				t = end
			} else {
				end := math.Min(length, t+period-offset)
				offset += end - t
				t = end
			}
			if offset >= period {
				offset = 0
			}
		}
	}
}

// arcPoints samples an arc around center from start to end degrees
func arcPoints(center geometry.Vector2, radius, start, end float64) []geometry.Vector2 {
	steps := int(math.Ceil(math.Abs(end-start) / 360 * arcSegments))
	if steps < 1 {
		steps = 1
	}
	pts := make([]geometry.Vector2, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := geometry.Radians(start + (end-start)*float64(i)/float64(steps))
		pts = append(pts, center.Add(geometry.NewVector2(math.Cos(a), math.Sin(a)).Mul(radius)))
	}
	return pts
}

// strokeCircle draws a circle outline
func (r *raster) strokeCircle(center geometry.Vector2, radius, width float64, col color.Color) {
	r.strokePolyline(arcPoints(center, radius, 0, 360), false, width, col)
}

// fillCircle draws a filled disc
func (r *raster) fillCircle(center geometry.Vector2, radius float64, col color.Color) {
	pts := arcPoints(center, radius, 0, 360)
	r.fillPolygon(pts[:len(pts)-1], col)
}

// drawText writes text with its baseline starting at p
func (r *raster) drawText(p geometry.Vector2, text string, col color.Color) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(p.X)), int(math.Round(p.Y))),
	}
	d.DrawString(text)
}
