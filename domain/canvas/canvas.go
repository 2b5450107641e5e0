// Package canvas implements overlay.Surface on an in-memory RGBA image.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/gift"
	lru "github.com/hashicorp/golang-lru/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/overlay-go/domain/overlay"
)

const defaultResizeCacheSize = 32

// Canvas draws overlay primitives onto an *image.RGBA. It is not safe for
// concurrent use; a render pass owns its canvas.
type Canvas struct {
	img   *image.RGBA
	m     affine
	stack []affine
	face  font.Face
	cache *ResizeCache
}

var _ overlay.Surface = (*Canvas)(nil)

// New wraps img. Decoration resizes go through cache, which may be nil.
func New(img *image.RGBA, cache *ResizeCache) *Canvas {
	return &Canvas{img: img, m: identity, face: basicfont.Face7x13, cache: cache}
}

// NewBlank allocates a transparent w x h canvas.
func NewBlank(w, h int, cache *ResizeCache) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return New(image.NewRGBA(image.Rect(0, 0, w, h)), cache)
}

// NewFromFrame scales frame to w x h and uses it as the background.
func NewFromFrame(frame image.Image, w, h int, cache *ResizeCache) *Canvas {
	c := NewBlank(w, h, cache)
	if frame != nil && !frame.Bounds().Empty() {
		xdraw.ApproxBiLinear.Scale(c.img, c.img.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
	}
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Save() { c.stack = append(c.stack, c.m) }

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.m = identity
		return
	}
	c.m = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Rotate(deg, px, py float64) {
	if !finite(deg, px, py) || deg == 0 {
		return
	}
	c.m = c.m.then(rotation(deg, px, py))
}

// DrawCircle draws a filled disc or a ring of the paint's stroke width.
// Only the part inside the canvas is visited.
func (c *Canvas) DrawCircle(cx, cy, radius float64, p overlay.Paint) {
	if !finite(cx, cy, radius) || radius <= 0 {
		return
	}
	x, y := c.m.apply(cx, cy)
	inner := -1.0
	outer := radius
	if p.Style == overlay.PaintStroke {
		hw := strokeHalf(p)
		inner, outer = radius-hw, radius+hw
	}
	box, ok := clipBox(c.img.Rect, x-outer, y-outer, x+outer, y+outer)
	if !ok {
		return
	}
	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			d := math.Hypot(float64(px)-x, float64(py)-y)
			if d <= outer && d >= inner {
				blendPixel(c.img, px, py, p.Color, p.Blend)
			}
		}
	}
}

// DrawRect draws the rect outline or fills it. Degenerate rects draw
// nothing when filled and a line or point when stroked. Work is bounded by
// the visible area, not the rect size.
func (c *Canvas) DrawRect(r overlay.Rect, p overlay.Paint) {
	if !finite(r.Left, r.Top, r.Right, r.Bottom) {
		return
	}
	if p.Style == overlay.PaintFill && r.Empty() {
		return
	}
	set := func(x, y int) { blendPixel(c.img, x, y, p.Color, p.Blend) }
	if c.m.isIdentity() {
		tl := roundPt(min(r.Left, r.Right), min(r.Top, r.Bottom))
		br := roundPt(max(r.Left, r.Right), max(r.Top, r.Bottom))
		if p.Style == overlay.PaintFill {
			for y := max(tl.Y, c.img.Rect.Min.Y); y <= min(br.Y, c.img.Rect.Max.Y-1); y++ {
				span(c.img.Rect, y, tl.X, br.X, set)
			}
			return
		}
		hw := int(math.Round(strokeHalf(p)))
		strokeAligned(c.img.Rect, tl.X, tl.Y, br.X, br.Y, hw, set)
		return
	}
	c.drawRotatedRect(r, p, set)
}

// drawRotatedRect tests each visible pixel against the rect in local space.
func (c *Canvas) drawRotatedRect(r overlay.Rect, p overlay.Paint, set func(x, y int)) {
	inv, ok := c.m.invert()
	if !ok {
		return
	}
	l, t := min(r.Left, r.Right), min(r.Top, r.Bottom)
	rr, b := max(r.Left, r.Right), max(r.Top, r.Bottom)
	hw := 0.0
	if p.Style == overlay.PaintStroke {
		hw = strokeHalf(p)
	}
	x0, y0, x1, y1 := quadBounds(c.m, l-hw, t-hw, rr+hw, b+hw)
	box, ok := clipBox(c.img.Rect, x0, y0, x1, y1)
	if !ok {
		return
	}
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			lx, ly := inv.apply(float64(x), float64(y))
			if lx < l-hw || lx > rr+hw || ly < t-hw || ly > b+hw {
				continue
			}
			if hw > 0 && lx > l+hw && lx < rr-hw && ly > t+hw && ly < b-hw {
				continue
			}
			set(x, y)
		}
	}
}

// DrawText draws text with its baseline starting at (x, y). The bitmap face
// has a fixed size, so Paint.TextSize is not applied.
func (c *Canvas) DrawText(text string, x, y float64, p overlay.Paint) {
	if text == "" || !finite(x, y) {
		return
	}
	tx, ty := c.m.apply(x, y)
	if math.Abs(tx) > coordLimit || math.Abs(ty) > coordLimit {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(p.Color),
		Face: c.face,
		Dot:  fixed.P(int(math.Round(tx)), int(math.Round(ty))),
	}
	d.DrawString(text)
}

// DrawImage scales img into dst and composites it with the paint's blend
// mode, following the current rotation. Only visible pixels are sampled;
// a pre-resized copy is used when dst is at most twice the canvas size.
func (c *Canvas) DrawImage(img image.Image, dst overlay.Rect, p overlay.Paint) {
	if img == nil || dst.Empty() || !finite(dst.Left, dst.Top, dst.Right, dst.Bottom) {
		return
	}
	if img.Bounds().Empty() {
		return
	}
	inv, ok := c.m.invert()
	if !ok {
		return
	}
	x0, y0, x1, y1 := quadBounds(c.m, dst.Left, dst.Top, dst.Right, dst.Bottom)
	box, ok := clipBox(c.img.Rect, x0, y0, x1, y1)
	if !ok {
		return
	}
	src := img
	dw, dh := dst.Width(), dst.Height()
	if dw <= 2*float64(c.img.Rect.Dx()) && dh <= 2*float64(c.img.Rect.Dy()) {
		w, h := int(math.Round(dw)), int(math.Round(dh))
		if w < 1 || h < 1 {
			return
		}
		src = c.cache.Resize(img, w, h)
	}
	sb := src.Bounds()
	fx, fy := float64(sb.Dx())/dw, float64(sb.Dy())/dh
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			lx, ly := inv.apply(float64(x)+0.5, float64(y)+0.5)
			if lx < dst.Left || ly < dst.Top || lx >= dst.Right || ly >= dst.Bottom {
				continue
			}
			sx := min(int((lx-dst.Left)*fx), sb.Dx()-1)
			sy := min(int((ly-dst.Top)*fy), sb.Dy()-1)
			col := premultiplied(src.At(sb.Min.X+sx, sb.Min.Y+sy))
			if col.A == 0 {
				continue
			}
			blendPixel(c.img, x, y, col, p.Blend)
		}
	}
}

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}

func strokeHalf(p overlay.Paint) float64 {
	if p.StrokeWidth <= 1 {
		return 0.5
	}
	return p.StrokeWidth / 2
}

type resizeKey struct {
	src  image.Image
	w, h int
}

// ResizeCache keeps recently scaled decoration images so a steady box size
// does not resample the asset on every pass.
type ResizeCache struct {
	lru *lru.Cache[resizeKey, image.Image]
}

// NewResizeCache returns a cache holding up to size scaled images.
func NewResizeCache(size int) (*ResizeCache, error) {
	if size <= 0 {
		size = defaultResizeCacheSize
	}
	l, err := lru.New[resizeKey, image.Image](size)
	if err != nil {
		return nil, err
	}
	return &ResizeCache{lru: l}, nil
}

// Resize scales img to w x h. A nil cache always resamples.
func (rc *ResizeCache) Resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	cacheable := rc != nil && comparableImage(img)
	key := resizeKey{src: img, w: w, h: h}
	if cacheable {
		if v, ok := rc.lru.Get(key); ok {
			return v
		}
	}
	g := gift.New(gift.Resize(w, h, gift.LinearResampling))
	out := image.NewNRGBA(g.Bounds(b))
	g.Draw(out, img)
	if cacheable {
		rc.lru.Add(key, out)
	}
	return out
}

// Len reports the number of cached images.
func (rc *ResizeCache) Len() int {
	if rc == nil {
		return 0
	}
	return rc.lru.Len()
}

func comparableImage(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.Paletted, *image.Gray, *image.YCbCr, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}
