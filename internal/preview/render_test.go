package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/philipparndt/geotrace/internal/app"
	"github.com/philipparndt/geotrace/internal/config"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func newSession(opts config.Options, w, h float64) *app.Session {
	s := app.NewSession(config.Static(opts), nil)
	s.Canvas = app.Canvas{Width: w, Height: h}
	return s
}

func TestRenderSize(t *testing.T) {
	s := newSession(config.Default(), 120.5, 40)
	img := Render(s.View(), Options{})

	if img.Bounds() != image.Rect(0, 0, 121, 40) {
		t.Errorf("Render size failed: got %v", img.Bounds())
	}
	if !isWhite(img.At(60, 20)) {
		t.Errorf("Empty figure should render a white canvas")
	}
}

func TestRenderSegment(t *testing.T) {
	s := newSession(config.Default(), 100, 50)
	s.SetTool(app.ToolSegment)
	s.Click(10, 25)
	s.Click(90, 25)

	img := Render(s.View(), Options{})

	if isWhite(img.At(50, 25)) {
		t.Errorf("Segment pixel should be inked")
	}
	if !isWhite(img.At(50, 45)) {
		t.Errorf("Pixel away from the segment should stay white")
	}
}

func TestRenderPickingHighlight(t *testing.T) {
	s := newSession(config.Default(), 100, 100)
	s.SetTool(app.ToolAngle)
	s.Click(50, 50)

	img := Render(s.View(), Options{})
	if isWhite(img.At(60, 50)) {
		t.Errorf("Picked point should be highlighted with a ring")
	}
	if !isWhite(img.At(50, 50)) {
		t.Errorf("Ring center should stay white without point markers")
	}
}

func TestRenderPointMarkers(t *testing.T) {
	opts := config.Default()
	opts.ShowPoints = true
	s := newSession(opts, 100, 100)
	s.Click(50, 50)

	img := Render(s.View(), Options{})
	if isWhite(img.At(50, 50)) {
		t.Errorf("Point marker should be drawn")
	}
}

func TestRenderBackground(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 2, 1))
	red := color.RGBA{R: 255, A: 255}
	bg.Set(0, 0, red)
	bg.Set(1, 0, red)

	s := newSession(config.Default(), 100, 50)
	img := Render(s.View(), Options{Background: bg, Opacity: 1})

	r, g, b, _ := img.At(10, 10).RGBA()
	if r < 0xf000 || g > 0x1000 || b > 0x1000 {
		t.Errorf("Background should cover the canvas, got %v", img.At(10, 10))
	}

	faded := Render(s.View(), Options{Background: bg, Opacity: 0.5})
	_, g, _, _ = faded.At(10, 10).RGBA()
	if g < 0x7000 || g > 0x9000 {
		t.Errorf("Half opacity should blend with white, got %v", faded.At(10, 10))
	}
}

func TestFitRect(t *testing.T) {
	got := fitRect(image.Rect(0, 0, 200, 100), image.Rect(0, 0, 100, 100))
	if got != image.Rect(50, 0, 150, 100) {
		t.Errorf("fitRect failed: expected (50,0)-(150,100), got %v", got)
	}

	got = fitRect(image.Rect(0, 0, 100, 100), image.Rect(0, 0, 400, 100))
	if got != image.Rect(0, 38, 100, 63) {
		t.Errorf("fitRect failed: expected (0,38)-(100,63), got %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	s := newSession(config.Default(), 30, 20)

	var buf bytes.Buffer
	if err := WritePNG(&buf, s.View(), Options{}); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("PNG decode failed: %v", err)
	}
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 20 {
		t.Errorf("PNG size failed: got %v", img.Bounds())
	}
}
