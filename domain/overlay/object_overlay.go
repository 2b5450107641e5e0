package overlay

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

const (
	positionRadius = 10.0
	idTextSize     = 40.0
	idXOffset      = -50.0
	idYOffset      = 50.0
	boxStrokeWidth = 5.0
)

// ObjectOverlay draws one tracked object: a center marker, id and metric
// text, its bounding box and optional landmark and decoration layers.
type ObjectOverlay struct {
	reg   *Registry
	id    atomic.Int64
	style VisualStyle
	snap  atomic.Pointer[ObjectSnapshot]

	assetMissing sync.Once
}

var _ Renderable = (*ObjectOverlay)(nil)

// NewObjectOverlay binds an overlay to reg. Most callers want
// Registry.NewOverlay, which also picks the style.
func NewObjectOverlay(reg *Registry, id int, style VisualStyle) *ObjectOverlay {
	o := &ObjectOverlay{reg: reg, style: style}
	o.id.Store(int64(id))
	return o
}

// SetID reassigns the displayed id.
func (o *ObjectOverlay) SetID(id int) { o.id.Store(int64(id)) }

// ID returns the displayed id.
func (o *ObjectOverlay) ID() int { return int(o.id.Load()) }

// Style returns the style assigned at creation.
func (o *ObjectOverlay) Style() VisualStyle { return o.style }

// Snapshot returns the latest snapshot or nil.
func (o *ObjectOverlay) Snapshot() *ObjectSnapshot { return o.snap.Load() }

// Update publishes s as the state for the next render and asks the owning
// registry for a redraw. A nil snapshot hides the overlay.
func (o *ObjectOverlay) Update(s *ObjectSnapshot) {
	o.snap.Store(s)
	if o.reg != nil {
		o.reg.RequestRedraw()
	}
}

// Render draws the latest snapshot. It draws nothing before the first Update.
func (o *ObjectOverlay) Render(s Surface, t Transform) {
	snap := o.snap.Load()
	if snap == nil || s == nil {
		return
	}
	var opts Options
	if o.reg != nil {
		opts = o.reg.opts
	}
	c := t.ToDisplay(snap.Center())

	if opts.RotationCompensation {
		s.Save()
		defer s.Restore()
		s.Rotate(snap.EulerZ-snap.EulerY, c.X, c.Y)
	}

	fill := Paint{Color: o.style.Stroke, Style: PaintFill}
	s.DrawCircle(c.X, c.Y, positionRadius, fill)

	text := Paint{Color: o.style.Stroke, Style: PaintFill, TextSize: idTextSize}
	for i, line := range textLines(o.ID(), snap) {
		dx, dy := textOffset(i)
		s.DrawText(line, c.X+dx, c.Y+dy, text)
	}

	box := BoundingBox(snap, t)
	boxPaint := Paint{Color: o.style.Stroke, Style: PaintStroke, StrokeWidth: boxStrokeWidth, Blend: BlendAdd}
	s.DrawRect(box, boxPaint)

	if opts.ShowDecoration && opts.Decorations != nil {
		o.drawDecoration(s, box, boxPaint, opts.Decorations)
	}
	if opts.ShowLandmarks && len(snap.Landmarks) > 0 {
		drawLandmarks(s, t, snap.Landmarks, o.style)
	}
}

func (o *ObjectOverlay) drawDecoration(s Surface, box Rect, p Paint, res DecorationResolver) {
	dst := DecorationRect(box)
	if dst.Empty() {
		return
	}
	img, ok := res.ResolveDecoration(o.ID())
	if !ok || img == nil {
		o.assetMissing.Do(func() {
			if o.reg != nil {
				o.reg.logger.Debug("decoration asset missing", "id", o.ID())
			}
		})
		return
	}
	s.DrawImage(img, dst, p)
}

// BoundingBox returns the display-space box of snap under t. Negative
// extents collapse to a zero-area box at the center.
func BoundingBox(snap *ObjectSnapshot, t Transform) Rect {
	c := t.ToDisplay(snap.Center())
	hw := math.Abs(t.ScaleX(math.Max(snap.Width, 0) / 2))
	hh := math.Abs(t.ScaleY(math.Max(snap.Height, 0) / 2))
	return Rect{Left: c.X - hw, Top: c.Y - hh, Right: c.X + hw, Bottom: c.Y + hh}
}

func textLines(id int, snap *ObjectSnapshot) []string {
	lines := make([]string, 0, 1+len(snap.Metrics))
	lines = append(lines, fmt.Sprintf("id: %d", id))
	for _, m := range snap.Metrics {
		if !m.Available() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %.2f", m.Name, m.Value))
	}
	return lines
}

// textOffset places line i relative to the center. Lines alternate between
// the lower-left and upper-right quadrants, stepping out by one offset
// every second line.
func textOffset(i int) (dx, dy float64) {
	m := float64(i/2 + 1)
	if i%2 == 0 {
		return idXOffset * m, idYOffset * m
	}
	return -idXOffset * m, -idYOffset * m
}
