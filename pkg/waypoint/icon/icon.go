// Package icon rasterizes SVG link icons.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrSize is returned for non-positive icon sizes.
var ErrSize = errors.New("icon: size must be positive")

// Rasterize draws svg scaled to a size x size RGBA image.
func Rasterize(svg []byte, size int32) (*image.RGBA, error) {
	if size <= 0 {
		return nil, ErrSize
	}

	ic, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("icon: parse svg: %w", err)
	}

	w, h := int(size), int(size)
	ic.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	ic.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return img, nil
}
