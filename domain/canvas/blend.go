package canvas

import (
	"image"
	"image/color"

	"github.com/soocke/overlay-go/domain/overlay"
)

// blendPixel combines c into dst at (x, y). Out-of-bounds writes are dropped.
func blendPixel(dst *image.RGBA, x, y int, c color.RGBA, mode overlay.BlendMode) {
	if !(image.Point{X: x, Y: y}).In(dst.Rect) {
		return
	}
	i := dst.PixOffset(x, y)
	px := dst.Pix[i : i+4 : i+4]
	switch mode {
	case overlay.BlendAdd:
		px[0] = addSat(px[0], c.R)
		px[1] = addSat(px[1], c.G)
		px[2] = addSat(px[2], c.B)
		px[3] = addSat(px[3], c.A)
	default:
		inv := 255 - uint32(c.A)
		px[0] = uint8(uint32(c.R) + uint32(px[0])*inv/255)
		px[1] = uint8(uint32(c.G) + uint32(px[1])*inv/255)
		px[2] = uint8(uint32(c.B) + uint32(px[2])*inv/255)
		px[3] = uint8(uint32(c.A) + uint32(px[3])*inv/255)
	}
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// premultiplied converts any color to premultiplied RGBA.
func premultiplied(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
