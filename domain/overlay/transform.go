package overlay

// Transform maps detector-space values to display space for one
// FrameGeometry. The zero value has no geometry and maps everything to 0.
type Transform struct {
	geom  FrameGeometry
	valid bool
}

// NewTransform binds a Transform to g.
func NewTransform(g FrameGeometry) Transform {
	return Transform{geom: g, valid: g.ImageWidth > 0 && g.ImageHeight > 0}
}

// Geometry returns the bound geometry and whether it is usable.
func (t Transform) Geometry() (FrameGeometry, bool) { return t.geom, t.valid }

// ScaleX scales a horizontal detector length to display pixels.
func (t Transform) ScaleX(v float64) float64 {
	if !t.valid {
		return 0
	}
	return v * t.geom.ViewWidth / t.geom.ImageWidth
}

// ScaleY scales a vertical detector length to display pixels.
func (t Transform) ScaleY(v float64) float64 {
	if !t.valid {
		return 0
	}
	return v * t.geom.ViewHeight / t.geom.ImageHeight
}

// ToDisplayX maps a detector x coordinate, mirroring for front-facing sensors.
func (t Transform) ToDisplayX(v float64) float64 {
	if !t.valid {
		return 0
	}
	if t.geom.Facing == FacingFront {
		return t.geom.ViewWidth - t.ScaleX(v)
	}
	return t.ScaleX(v)
}

// ToDisplayY maps a detector y coordinate.
func (t Transform) ToDisplayY(v float64) float64 {
	return t.ScaleY(v)
}

// ToDisplay maps a detector point.
func (t Transform) ToDisplay(p Point) Point {
	return Point{X: t.ToDisplayX(p.X), Y: t.ToDisplayY(p.Y)}
}
