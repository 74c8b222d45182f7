package splitter

import (
	"context"
	"fmt"
	"image"

	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// Options contains the parameters of a single split request
type Options struct {
	Direction Direction
	Count     int
	// Format overrides the output format. Unknown keeps the source format.
	Format imagefmt.Format
}

// Slice is one encoded region of the source
type Slice struct {
	Index    int
	Bounds   image.Rectangle
	Image    *image.NRGBA
	Filename string
	Data     []byte
}

// ContentType returns the MIME type the slice is served with
func (s *Slice) ContentType() string {
	return imagefmt.FromFilename(s.Filename).MIMEType()
}

// Result holds the ordered slices of one split
type Result struct {
	SourceName string
	Direction  Direction
	Format     imagefmt.Format
	Slices     []Slice
}

// Entries returns the (filename, bytes) pairs in slice order
func (r *Result) Entries() []Entry {
	entries := make([]Entry, len(r.Slices))
	for i, s := range r.Slices {
		entries[i] = Entry{Name: s.Filename, Data: s.Data}
	}
	return entries
}

// Archive packs every slice into a zip
func (r *Result) Archive() ([]byte, error) {
	return Archive(r.Entries())
}

// ArchiveName returns "<source basename>_splits.zip"
func (r *Result) ArchiveName() string {
	return ArchiveName(r.SourceName)
}

// Download returns what a combined download serves: the lone slice when
// there is exactly one, the zip otherwise.
func (r *Result) Download() (filename, contentType string, data []byte, err error) {
	if len(r.Slices) == 1 {
		s := r.Slices[0]
		return s.Filename, s.ContentType(), s.Data, nil
	}
	data, err = r.Archive()
	if err != nil {
		return "", "", nil, err
	}
	return r.ArchiveName(), "application/zip", data, nil
}

// Splitter performs split operations
type Splitter struct {
	limits  Limits
	encoder *Encoder
}

// New creates a splitter with the given count limits and encoder settings
func New(limits Limits, encoder *Encoder) *Splitter {
	if encoder == nil {
		encoder = &Encoder{JPEGQuality: DefaultJPEGQuality}
	}
	return &Splitter{
		limits:  limits,
		encoder: encoder,
	}
}

// Limits returns the configured count limits
func (s *Splitter) Limits() Limits {
	return s.limits
}

// OutputFormat resolves the format slices of src will be encoded in
func (s *Splitter) OutputFormat(src *Source, requested imagefmt.Format) imagefmt.Format {
	return imagefmt.Resolve(requested, src.Format, s.encoder.CanEncode)
}

// Plan validates opts against the limits and returns the rectangles
// a split of a width x height image would produce
func (s *Splitter) Plan(width, height int, opts Options) ([]image.Rectangle, error) {
	if opts.Direction != Horizontal && opts.Direction != Vertical {
		return nil, paramErrorf("direction", "unsupported direction %v", opts.Direction)
	}
	if err := s.limits.Check(opts.Count, Extent(width, height, opts.Direction)); err != nil {
		return nil, err
	}
	return Rectangles(width, height, opts.Direction, opts.Count)
}

// Split cuts src into opts.Count slices and encodes each one. The first
// encode failure aborts the whole batch.
func (s *Splitter) Split(ctx context.Context, src *Source, opts Options) (*Result, error) {
	if src == nil || src.Image == nil {
		return nil, paramErrorf("image", "no image loaded")
	}
	if opts.Format != imagefmt.Unknown && !s.encoder.CanEncode(opts.Format) {
		return nil, paramErrorf("format", "cannot encode %s", opts.Format)
	}

	rects, err := s.Plan(src.Width(), src.Height(), opts)
	if err != nil {
		return nil, err
	}

	format := s.OutputFormat(src, opts.Format)
	result := &Result{
		SourceName: src.Name,
		Direction:  opts.Direction,
		Format:     format,
		Slices:     make([]Slice, 0, len(rects)),
	}

	for i, rect := range rects {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		region, err := Crop(src.Image, rect)
		if err != nil {
			return nil, fmt.Errorf("slice %d: %w", i+1, err)
		}

		name := Name(i, format)
		data, err := s.encoder.Encode(region, format)
		if err != nil {
			return nil, &EncodeError{Filename: name, Format: format, Err: err}
		}

		result.Slices = append(result.Slices, Slice{
			Index:    i,
			Bounds:   rect,
			Image:    region,
			Filename: name,
			Data:     data,
		})
	}

	return result, nil
}
