package splitter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WEBP decoder with image.Decode

	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// Source is an uploaded image. It is never modified after Load.
type Source struct {
	Name   string
	Format imagefmt.Format
	Image  image.Image
	Size   int
}

// Width returns the source width in pixels
func (s *Source) Width() int { return s.Image.Bounds().Dx() }

// Height returns the source height in pixels
func (s *Source) Height() int { return s.Image.Bounds().Dy() }

// Load decodes data as an image. The format is sniffed from the content
// and must be in accepted; an empty accepted list allows every known
// format. Any failure is returned as a *LoadError.
func Load(name string, data []byte, accepted []imagefmt.Format) (*Source, error) {
	if len(data) == 0 {
		return nil, &LoadError{Filename: name, Err: errors.New("empty upload")}
	}

	format := imagefmt.Detect(data, name)
	if !format.Known() {
		return nil, &LoadError{Filename: name, Err: errors.New("unrecognized image format")}
	}
	if len(accepted) > 0 && !imagefmt.Contains(accepted, format) {
		return nil, &LoadError{Filename: name, Format: format, Err: fmt.Errorf("format %s is not accepted", format)}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Filename: name, Format: format, Err: err}
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &LoadError{Filename: name, Format: format, Err: fmt.Errorf("image has no pixels (%dx%d)", b.Dx(), b.Dy())}
	}

	return &Source{
		Name:   name,
		Format: format,
		Image:  img,
		Size:   len(data),
	}, nil
}

// LoadReader reads at most limit bytes from r and loads them. A limit of
// zero or less means no limit.
func LoadReader(name string, r io.Reader, limit int64, accepted []imagefmt.Format) (*Source, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Filename: name, Err: err}
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, &LoadError{Filename: name, Err: fmt.Errorf("upload exceeds %d bytes", limit)}
	}
	return Load(name, data, accepted)
}
