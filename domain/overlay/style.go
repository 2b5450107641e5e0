package overlay

import (
	"image/color"
	"sync/atomic"
)

// VisualStyle is the per-object styling chosen when an overlay is created.
type VisualStyle struct {
	Stroke color.RGBA
}

// Palette is a fixed list of styles handed out in order.
type Palette []VisualStyle

var (
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
)

// DefaultPalette returns the seven stroke colors used for tracked objects.
func DefaultPalette() Palette {
	return Palette{
		{Stroke: ColorBlue},
		{Stroke: ColorCyan},
		{Stroke: ColorGreen},
		{Stroke: ColorMagenta},
		{Stroke: ColorRed},
		{Stroke: ColorWhite},
		{Stroke: ColorYellow},
	}
}

// StyleAllocator hands out palette entries round-robin. Safe for
// concurrent use.
type StyleAllocator struct {
	palette Palette
	next    atomic.Uint64
}

// NewStyleAllocator returns an allocator over p, or DefaultPalette when p
// is empty.
func NewStyleAllocator(p Palette) *StyleAllocator {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	cp := make(Palette, len(p))
	copy(cp, p)
	return &StyleAllocator{palette: cp}
}

// Next reads the current index and advances it.
func (a *StyleAllocator) Next() VisualStyle {
	i := a.next.Add(1) - 1
	return a.palette[i%uint64(len(a.palette))]
}

// Len returns the palette size.
func (a *StyleAllocator) Len() int { return len(a.palette) }
