package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenGrab captures region from the primary screen, or the whole screen
// when region is empty.
func ScreenGrab(region image.Rectangle) (*image.RGBA, error) {
	var (
		img *image.RGBA
		err error
	)
	if region.Empty() {
		img, err = screenshot.CaptureScreen()
	} else {
		img, err = screenshot.CaptureRect(region)
	}
	if err != nil {
		return nil, fmt.Errorf("screen grab %v: %w", region, err)
	}
	return img, nil
}
