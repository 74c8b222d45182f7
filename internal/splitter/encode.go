package splitter

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// DefaultJPEGQuality is used when no quality is configured
const DefaultJPEGQuality = 95

// Encoder serializes slice images
type Encoder struct {
	JPEGQuality int
	// WebPLossy switches WEBP output from lossless to lossy at JPEGQuality
	WebPLossy bool
}

// CanEncode reports whether f has an encoder
func (e *Encoder) CanEncode(f imagefmt.Format) bool {
	switch f {
	case imagefmt.PNG, imagefmt.JPEG, imagefmt.GIF, imagefmt.BMP, imagefmt.TIFF, imagefmt.WEBP:
		return true
	}
	return false
}

func (e *Encoder) quality() int {
	if e.JPEGQuality < 1 || e.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return e.JPEGQuality
}

// Encode writes img in format f and returns the bytes
func (e *Encoder) Encode(img image.Image, f imagefmt.Format) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch f {
	case imagefmt.WEBP:
		err = webp.Encode(&buf, img, &webp.Options{
			Lossless: !e.WebPLossy,
			Quality:  float32(e.quality()),
		})
	case imagefmt.PNG:
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
	case imagefmt.JPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(e.quality()))
	case imagefmt.GIF:
		err = imaging.Encode(&buf, img, imaging.GIF)
	case imagefmt.BMP:
		err = imaging.Encode(&buf, img, imaging.BMP)
	case imagefmt.TIFF:
		err = imaging.Encode(&buf, img, imaging.TIFF)
	default:
		return nil, fmt.Errorf("no encoder for format %s", f)
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
