package capture

import (
	"image"
	"sync"
)

// Reusable frame pool. The screenshot library hands back a fresh *image.RGBA
// per grab; copying into a pooled buffer keeps the retained set of large
// backing slices bounded when the renderer holds on to older frames.

var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns a reusable RGBA image sized to rect with Stride
// width*4.
func acquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	return img
}

// copyFrame copies src into a pooled frame with the same bounds.
func copyFrame(src *image.RGBA) *image.RGBA {
	dst := acquireFrame(src.Rect)
	if len(dst.Pix) == 0 {
		return dst
	}
	w := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		so := y * src.Stride
		do := y * dst.Stride
		copy(dst.Pix[do:do+w], src.Pix[so:so+w])
	}
	return dst
}

// RecycleFrame returns the frame to the pool. The caller must not touch the
// frame afterwards.
func RecycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
