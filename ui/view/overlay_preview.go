package view

import (
	"image"

	"github.com/soocke/overlay-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OverlayPreview shows the latest rendered overlay frame.
type OverlayPreview interface {
	UpdateOverlay(img image.Image)
	Reset()
}

type overlayPreview struct {
	label     *LabelWidget
	maxW      int
	maxH      int
	prevPhoto *Img // disposed before each replacement
}

// NewOverlayPreview creates the preview label spanning columns 0-4 of row.
func NewOverlayPreview(row, maxW, maxH int) OverlayPreview {
	v := &overlayPreview{maxW: max(maxW, 50), maxH: max(maxH, 50)}
	v.prevPhoto = NewPhoto(Data(v.placeholder()))
	v.label = Label(Image(v.prevPhoto), Borderwidth(1), Relief("sunken"))
	Grid(v.label, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return v
}

func (v *overlayPreview) placeholder() []byte {
	w, h := images.FitSize(image.Rect(0, 0, v.maxW, v.maxH), v.maxW, v.maxH)
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func (v *overlayPreview) UpdateOverlay(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, v.maxW, v.maxH)
	v.replace(images.EncodePNG(scaled))
}

func (v *overlayPreview) Reset() {
	if v.label == nil {
		return
	}
	v.replace(v.placeholder())
}

func (v *overlayPreview) replace(png []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(png))
	v.label.Configure(Image(v.prevPhoto))
}
