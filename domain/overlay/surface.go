package overlay

import (
	"image"
	"image/color"
)

// PaintStyle selects outline or solid drawing.
type PaintStyle int

const (
	PaintFill PaintStyle = iota
	PaintStroke
)

// BlendMode selects how source pixels combine with the surface.
type BlendMode int

const (
	BlendOver BlendMode = iota
	// BlendAdd sums color channels, saturating at full intensity.
	BlendAdd
)

// Paint carries the drawing attributes for a single operation.
type Paint struct {
	Color       color.RGBA
	Style       PaintStyle
	StrokeWidth float64
	TextSize    float64
	Blend       BlendMode
}

// Surface is the host drawing target handed to a render pass. Coordinates
// are display pixels. Rotate applies to every following call until the
// matching Restore.
type Surface interface {
	DrawCircle(cx, cy, radius float64, p Paint)
	DrawRect(r Rect, p Paint)
	DrawText(text string, x, y float64, p Paint)
	DrawImage(img image.Image, dst Rect, p Paint)
	Save()
	Restore()
	Rotate(degrees, px, py float64)
}
