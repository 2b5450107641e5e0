package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DecorationPNG contains the raw PNG bytes of the default decoration.
//
//go:embed decoration.png
var DecorationPNG []byte

// DecorationImage decodes the embedded decoration.
func DecorationImage() (image.Image, error) {
	if len(DecorationPNG) == 0 {
		return nil, fmt.Errorf("embedded decoration.png is empty")
	}
	img, err := imaging.Decode(bytes.NewReader(DecorationPNG))
	if err != nil {
		return nil, fmt.Errorf("decode decoration.png: %w", err)
	}
	return img, nil
}
