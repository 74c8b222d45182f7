package splitter

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop copies the pixels inside r out of src. r is relative to the
// source origin. The returned image starts at (0,0) and shares no memory
// with src.
func Crop(src image.Image, r image.Rectangle) (*image.NRGBA, error) {
	bounds := src.Bounds()
	full := image.Rect(0, 0, bounds.Dx(), bounds.Dy())

	if r.Empty() || !r.In(full) {
		return nil, fmt.Errorf("%w: %v not within %v", ErrOutOfBounds, r, full)
	}

	return imaging.Crop(src, r.Add(bounds.Min)), nil
}
