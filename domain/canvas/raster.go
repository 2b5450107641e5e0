package canvas

import (
	"image"
	"math"
)

// coordLimit bounds device coordinates before integer conversion; anything
// further out is off every realistic canvas.
const coordLimit = 1 << 24

func clampCoord(v float64) float64 {
	return math.Max(-coordLimit, math.Min(coordLimit, v))
}

func roundPt(x, y float64) image.Point {
	return image.Pt(int(math.Round(clampCoord(x))), int(math.Round(clampCoord(y))))
}

// clipBox returns the pixels of bounds that cover the float box
// [x0,x1]x[y0,y1]. ok is false when nothing is visible.
func clipBox(bounds image.Rectangle, x0, y0, x1, y1 float64) (image.Rectangle, bool) {
	x0 = math.Max(x0, float64(bounds.Min.X))
	y0 = math.Max(y0, float64(bounds.Min.Y))
	x1 = math.Min(x1, float64(bounds.Max.X-1))
	y1 = math.Min(y1, float64(bounds.Max.Y-1))
	if x0 > x1 || y0 > y1 {
		return image.Rectangle{}, false
	}
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1))+1, int(math.Ceil(y1))+1)
	r = r.Intersect(bounds)
	return r, !r.Empty()
}

// quadBounds is the device-space bounding box of the local rect
// [l,r]x[t,b] under m.
func quadBounds(m affine, l, t, r, b float64) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, pt := range [4][2]float64{{l, t}, {r, t}, {r, b}, {l, b}} {
		x, y := m.apply(pt[0], pt[1])
		x0, x1 = math.Min(x0, x), math.Max(x1, x)
		y0, y1 = math.Min(y0, y), math.Max(y1, y)
	}
	return x0, y0, x1, y1
}

// span iterates the inclusive x range [x0,x1] of row y clipped to bounds.
func span(bounds image.Rectangle, y, x0, x1 int, set func(x, y int)) {
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	x0 = max(x0, bounds.Min.X)
	x1 = min(x1, bounds.Max.X-1)
	for x := x0; x <= x1; x++ {
		set(x, y)
	}
}

// strokeAligned paints the outline of the integer rect [l,r]x[t,b] with
// half width hw, visiting each visible pixel once.
func strokeAligned(bounds image.Rectangle, l, t, r, b, hw int, set func(x, y int)) {
	y0 := max(t-hw, bounds.Min.Y)
	y1 := min(b+hw, bounds.Max.Y-1)
	for y := y0; y <= y1; y++ {
		if y <= t+hw || y >= b-hw {
			span(bounds, y, l-hw, r+hw, set)
			continue
		}
		// Side bands merge when the rect is narrower than the stroke.
		if l+hw >= r-hw-1 {
			span(bounds, y, l-hw, r+hw, set)
			continue
		}
		span(bounds, y, l-hw, l+hw, set)
		span(bounds, y, r-hw, r+hw, set)
	}
}
