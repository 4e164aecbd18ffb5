package preview

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LoadBackground decodes a PNG, JPEG, BMP or WebP reference image
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open background: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background %s: %w", path, err)
	}
	return img, nil
}

// fitRect returns the largest rectangle with the aspect ratio of src that
// fits inside dst, centered
func fitRect(dst image.Rectangle, src image.Rectangle) image.Rectangle {
	cw, ch := float64(dst.Dx()), float64(dst.Dy())
	iw, ih := float64(src.Dx()), float64(src.Dy())
	if iw == 0 || ih == 0 || cw == 0 || ch == 0 {
		return image.Rectangle{}
	}

	ir := iw / ih
	var w, h, x, y float64
	if ir > cw/ch {
		w, h = cw, cw/ir
		y = (ch - h) / 2
	} else {
		w, h = ch*ir, ch
		x = (cw - w) / 2
	}

	origin := image.Pt(dst.Min.X+int(math.Round(x)), dst.Min.Y+int(math.Round(y)))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(int(math.Round(w)), int(math.Round(h))))}
}

// drawBackground scales bg into the canvas and blends it with the given opacity
func (r *raster) drawBackground(bg image.Image, opacity float64) {
	if bg == nil || opacity <= 0 {
		return
	}
	target := fitRect(r.img.Bounds(), bg.Bounds())
	if target.Empty() {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, target.Dx(), target.Dy()))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), bg, bg.Bounds(), draw.Src, nil)

	alpha := uint8(math.Round(math.Min(opacity, 1) * 255))
	mask := image.NewUniform(color.Alpha{A: alpha})
	draw.DrawMask(r.img, target, scaled, image.Point{}, mask, image.Point{}, draw.Over)
}
