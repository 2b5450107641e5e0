package overlay

import "image"

// DecorationResolver supplies the optional image composited over an
// object's box. Returning false means no asset; the step is skipped.
type DecorationResolver interface {
	ResolveDecoration(id int) (image.Image, bool)
}

// DecorationFunc adapts a function to DecorationResolver.
type DecorationFunc func(id int) (image.Image, bool)

func (f DecorationFunc) ResolveDecoration(id int) (image.Image, bool) { return f(id) }

// decorationTopInset moves the decoration's top edge below the box top.
const decorationTopInset = 100

// DecorationRect returns the rect the decoration is drawn into for a box.
func DecorationRect(box Rect) Rect {
	return Rect{Left: box.Left, Top: box.Top + decorationTopInset, Right: box.Right, Bottom: box.Bottom}
}
