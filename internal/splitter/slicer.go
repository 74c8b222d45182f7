package splitter

import (
	"fmt"
	"image"
	"strings"
)

// Direction selects the axis along which an image is split
type Direction int

const (
	// Horizontal cuts along the height axis, producing stacked bands
	Horizontal Direction = iota
	// Vertical cuts along the width axis, producing side-by-side columns
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "horizontal", "h", "vertical" or "v" in any case
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, paramErrorf("direction", "must be horizontal or vertical, got %q", s)
}

// Extent returns the length of the axis a split in direction d cuts
func Extent(width, height int, d Direction) int {
	if d == Horizontal {
		return height
	}
	return width
}

// Rectangles partitions a width x height image into n contiguous
// rectangles along the axis chosen by d. Each rectangle spans
// extent/n pixels on the split axis except the last, which also takes
// the remainder. Rectangles are returned in reading order and are
// relative to the image origin.
//
// n larger than the extent is rejected rather than producing empty slices.
func Rectangles(width, height int, d Direction, n int) ([]image.Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, paramErrorf("image", "dimensions must be positive, got %dx%d", width, height)
	}
	if d != Horizontal && d != Vertical {
		return nil, paramErrorf("direction", "unsupported direction %v", d)
	}
	if n < 1 {
		return nil, paramErrorf("count", "must be at least 1, got %d", n)
	}

	extent := Extent(width, height, d)
	if n > extent {
		return nil, paramErrorf("count", "%d slices exceed the %d pixel %s extent", n, extent, d)
	}

	base := extent / n
	rects := make([]image.Rectangle, n)
	for i := 0; i < n; i++ {
		start := i * base
		end := start + base
		if i == n-1 {
			end = extent
		}

		if d == Horizontal {
			rects[i] = image.Rect(0, start, width, end)
		} else {
			rects[i] = image.Rect(start, 0, end, height)
		}
	}

	return rects, nil
}

// Limits bounds the slice count accepted at the boundary
type Limits struct {
	MaxCount int
}

// MinCount is the smallest accepted slice count
const MinCount = 2

// DefaultMaxCount is used when no maximum is configured
const DefaultMaxCount = 100

// Max returns the effective maximum count
func (l Limits) Max() int {
	if l.MaxCount < MinCount {
		return DefaultMaxCount
	}
	return l.MaxCount
}

// Check validates count against the configured bounds and the extent
// being split. It runs before any slicing is attempted.
func (l Limits) Check(count, extent int) error {
	if count < MinCount || count > l.Max() {
		return paramErrorf("count", "must be between %d and %d, got %d", MinCount, l.Max(), count)
	}
	if count > extent {
		return paramErrorf("count", "%d slices exceed the %d pixel extent", count, extent)
	}
	return nil
}
