package overlay

import (
	"image"
	"sync"
)

type drawOp struct {
	kind   string
	x, y   float64
	radius float64
	rect   Rect
	text   string
	paint  Paint
}

// recorder is a Surface that records every call.
type recorder struct {
	mu  sync.Mutex
	ops []drawOp
}

var _ Surface = (*recorder)(nil)

func (r *recorder) add(op drawOp) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

func (r *recorder) DrawCircle(cx, cy, radius float64, p Paint) {
	r.add(drawOp{kind: "circle", x: cx, y: cy, radius: radius, paint: p})
}
func (r *recorder) DrawRect(rect Rect, p Paint) { r.add(drawOp{kind: "rect", rect: rect, paint: p}) }
func (r *recorder) DrawText(text string, x, y float64, p Paint) {
	r.add(drawOp{kind: "text", x: x, y: y, text: text, paint: p})
}
func (r *recorder) DrawImage(img image.Image, dst Rect, p Paint) {
	r.add(drawOp{kind: "image", rect: dst, paint: p})
}
func (r *recorder) Save()    { r.add(drawOp{kind: "save"}) }
func (r *recorder) Restore() { r.add(drawOp{kind: "restore"}) }
func (r *recorder) Rotate(deg, px, py float64) {
	r.add(drawOp{kind: "rotate", x: px, y: py, radius: deg})
}

func (r *recorder) byKind(kind string) []drawOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) texts() []string {
	var out []string
	for _, op := range r.byKind("text") {
		out = append(out, op.text)
	}
	return out
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ops)
}

func identityGeometry() FrameGeometry {
	return FrameGeometry{ImageWidth: 640, ImageHeight: 480, ViewWidth: 640, ViewHeight: 480}
}
