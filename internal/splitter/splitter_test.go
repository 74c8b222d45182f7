package splitter

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// createGradientImage returns an opaque image where every pixel differs
// from its neighbours, so misplaced pixels are detectable.
func createGradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{uint8(x * 7), uint8(y * 13), uint8(x + y), 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func newTestSplitter() *Splitter {
	return New(Limits{MaxCount: 100}, &Encoder{JPEGQuality: 90})
}

func TestCrop_IndependentCopy(t *testing.T) {
	src := createGradientImage(20, 10)
	before := append([]uint8(nil), src.Pix...)

	region, err := Crop(src, image.Rect(0, 0, 10, 5))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	for i := range region.Pix {
		region.Pix[i] = 0
	}

	if !bytes.Equal(src.Pix, before) {
		t.Error("mutating the cropped region changed the source")
	}
}

func TestCrop_NonZeroOrigin(t *testing.T) {
	full := createGradientImage(20, 20)
	sub := full.SubImage(image.Rect(5, 5, 15, 15))

	region, err := Crop(sub, image.Rect(0, 0, 2, 2))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if got, want := region.NRGBAAt(0, 0), full.NRGBAAt(5, 5); got != want {
		t.Errorf("pixel: got %v, want %v", got, want)
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	src := createGradientImage(10, 10)

	tests := []struct {
		name string
		r    image.Rectangle
	}{
		{"past right edge", image.Rect(5, 0, 11, 10)},
		{"past bottom edge", image.Rect(0, 5, 10, 11)},
		{"negative origin", image.Rect(-1, 0, 5, 5)},
		{"empty", image.Rect(3, 3, 3, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(src, tt.r)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	src := createGradientImage(37, 23)
	s := newTestSplitter()

	for _, dir := range []Direction{Horizontal, Vertical} {
		t.Run(dir.String(), func(t *testing.T) {
			result, err := s.Split(context.Background(), &Source{Name: "g.png", Format: imagefmt.PNG, Image: src}, Options{
				Direction: dir,
				Count:     5,
			})
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}

			rebuilt := image.NewNRGBA(src.Bounds())
			for _, sl := range result.Slices {
				draw.Draw(rebuilt, sl.Bounds, sl.Image, image.Point{}, draw.Src)
			}
			if !bytes.Equal(rebuilt.Pix, src.Pix) {
				t.Error("reassembled slices differ from the source")
			}

			// the encoded PNG bytes decode back to the same pixels
			for _, sl := range result.Slices {
				decoded, err := png.Decode(bytes.NewReader(sl.Data))
				if err != nil {
					t.Fatalf("%s: %v", sl.Filename, err)
				}
				b := decoded.Bounds()
				for y := 0; y < b.Dy(); y++ {
					for x := 0; x < b.Dx(); x++ {
						got := color.NRGBAModel.Convert(decoded.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
						want := src.NRGBAAt(sl.Bounds.Min.X+x, sl.Bounds.Min.Y+y)
						if got != want {
							t.Fatalf("%s pixel (%d,%d): got %v, want %v", sl.Filename, x, y, got, want)
						}
					}
				}
			}
		})
	}
}

func TestSplit_Naming(t *testing.T) {
	src := &Source{Name: "photo.jpg", Format: imagefmt.JPEG, Image: createGradientImage(40, 30)}
	result, err := newTestSplitter().Split(context.Background(), src, Options{Direction: Horizontal, Count: 12})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if result.Format != imagefmt.JPEG {
		t.Errorf("format: got %v, want jpeg", result.Format)
	}

	seen := map[string]bool{}
	for i, sl := range result.Slices {
		want := Name(i, imagefmt.JPEG)
		if sl.Filename != want {
			t.Errorf("slice %d: got %s, want %s", i, sl.Filename, want)
		}
		if seen[sl.Filename] {
			t.Errorf("duplicate filename %s", sl.Filename)
		}
		seen[sl.Filename] = true
		if sl.ContentType() != "image/jpeg" {
			t.Errorf("content type: got %s", sl.ContentType())
		}
		if !bytes.HasPrefix(sl.Data, []byte{0xFF, 0xD8}) {
			t.Errorf("%s is not a JPEG", sl.Filename)
		}
	}

	if result.Slices[0].Filename != "split_1.jpeg" || result.Slices[11].Filename != "split_12.jpeg" {
		t.Errorf("unexpected names %s .. %s", result.Slices[0].Filename, result.Slices[11].Filename)
	}
}

func TestSplit_FormatOverrideAndFallback(t *testing.T) {
	img := createGradientImage(16, 16)
	s := newTestSplitter()

	result, err := s.Split(context.Background(), &Source{Name: "a.png", Format: imagefmt.PNG, Image: img}, Options{
		Direction: Vertical, Count: 2, Format: imagefmt.BMP,
	})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if result.Slices[0].Filename != "split_1.bmp" || !bytes.HasPrefix(result.Slices[0].Data, []byte("BM")) {
		t.Errorf("expected BMP output, got %s", result.Slices[0].Filename)
	}

	result, err = s.Split(context.Background(), &Source{Name: "a", Format: imagefmt.Unknown, Image: img}, Options{
		Direction: Vertical, Count: 2,
	})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if result.Format != imagefmt.PNG || result.Slices[1].Filename != "split_2.png" {
		t.Errorf("expected PNG fallback, got %v / %s", result.Format, result.Slices[1].Filename)
	}
}

func TestSplit_InvalidParameters(t *testing.T) {
	src := &Source{Name: "a.png", Format: imagefmt.PNG, Image: createGradientImage(10, 5)}
	s := New(Limits{MaxCount: 8}, nil)

	tests := []struct {
		name string
		opts Options
	}{
		{"count of one", Options{Direction: Horizontal, Count: 1}},
		{"count above max", Options{Direction: Vertical, Count: 9}},
		{"count above extent", Options{Direction: Horizontal, Count: 6}},
		{"unknown direction", Options{Direction: Direction(3), Count: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Split(context.Background(), src, tt.opts)
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("expected ErrInvalidParameters, got %v", err)
			}
			if result != nil {
				t.Error("expected no result on error")
			}
		})
	}

	if _, err := s.Split(context.Background(), nil, Options{Direction: Horizontal, Count: 2}); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for a missing source, got %v", err)
	}
}

func TestSplit_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &Source{Name: "a.png", Format: imagefmt.PNG, Image: createGradientImage(10, 10)}
	_, err := newTestSplitter().Split(ctx, src, Options{Direction: Horizontal, Count: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestResult_ArchiveRoundTrip(t *testing.T) {
	src := &Source{Name: "uploads/banner.png", Format: imagefmt.PNG, Image: createGradientImage(60, 11)}
	result, err := newTestSplitter().Split(context.Background(), src, Options{Direction: Vertical, Count: 11})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	name, contentType, data, err := result.Download()
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if name != "banner_splits.zip" {
		t.Errorf("archive name: got %s, want banner_splits.zip", name)
	}
	if contentType != "application/zip" {
		t.Errorf("content type: got %s", contentType)
	}

	entries, err := ReadArchive(data)
	if err != nil {
		t.Fatalf("ReadArchive failed: %v", err)
	}
	if len(entries) != len(result.Slices) {
		t.Fatalf("got %d entries, want %d", len(entries), len(result.Slices))
	}
	for i, e := range entries {
		sl := result.Slices[i]
		if e.Name != sl.Filename {
			t.Errorf("entry %d: got %s, want %s", i, e.Name, sl.Filename)
		}
		if !bytes.Equal(e.Data, sl.Data) {
			t.Errorf("entry %s: data differs", e.Name)
		}
	}
}

func TestResult_DownloadSingleSlice(t *testing.T) {
	result := &Result{
		SourceName: "a.png",
		Format:     imagefmt.PNG,
		Slices:     []Slice{{Filename: "split_1.png", Data: []byte("x")}},
	}

	name, contentType, data, err := result.Download()
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if name != "split_1.png" || contentType != "image/png" || string(data) != "x" {
		t.Errorf("got %s %s %q", name, contentType, data)
	}
}

func TestArchive_DuplicateNames(t *testing.T) {
	_, err := Archive([]Entry{{Name: "a.png"}, {Name: "a.png"}})
	if err == nil {
		t.Error("Archive should reject duplicate entry names")
	}
}

func TestReadArchive_Invalid(t *testing.T) {
	if _, err := ReadArchive([]byte("not a zip")); err == nil {
		t.Error("ReadArchive should fail for non-zip data")
	}
}

func TestLoad(t *testing.T) {
	data := encodePNG(t, createGradientImage(30, 20))

	src, err := Load("pic.png", data, []imagefmt.Format{imagefmt.PNG, imagefmt.JPEG})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src.Width() != 30 || src.Height() != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", src.Width(), src.Height())
	}
	if src.Format != imagefmt.PNG || src.Size != len(data) {
		t.Errorf("got format %v size %d", src.Format, src.Size)
	}

	// the declared extension does not override sniffed content
	src, err = Load("pic.jpg", data, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src.Format != imagefmt.PNG {
		t.Errorf("format: got %v, want png", src.Format)
	}
}

func TestLoad_Errors(t *testing.T) {
	pngData := encodePNG(t, createGradientImage(4, 4))

	tests := []struct {
		name     string
		filename string
		data     []byte
		accepted []imagefmt.Format
	}{
		{"empty", "a.png", nil, nil},
		{"text file", "notes.txt", []byte("hello"), nil},
		{"text named png", "fake.png", []byte("hello there"), nil},
		{"truncated png", "t.png", pngData[:20], nil},
		{"format not accepted", "a.png", pngData, []imagefmt.Format{imagefmt.JPEG}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Load(tt.filename, tt.data, tt.accepted)
			if !errors.Is(err, ErrLoad) {
				t.Errorf("expected ErrLoad, got %v", err)
			}
			var le *LoadError
			if !errors.As(err, &le) || le.Filename != tt.filename {
				t.Errorf("expected *LoadError for %s, got %v", tt.filename, err)
			}
			if src != nil {
				t.Error("expected no source on error")
			}
		})
	}
}

func TestLoadReader_Limit(t *testing.T) {
	data := encodePNG(t, createGradientImage(8, 8))

	if _, err := LoadReader("a.png", bytes.NewReader(data), int64(len(data)), nil); err != nil {
		t.Errorf("LoadReader at the limit failed: %v", err)
	}
	if _, err := LoadReader("a.png", bytes.NewReader(data), int64(len(data)-1), nil); !errors.Is(err, ErrLoad) {
		t.Errorf("expected ErrLoad over the limit, got %v", err)
	}
}

func TestArchiveName(t *testing.T) {
	tests := map[string]string{
		"photo.png":            "photo_splits.zip",
		"my.photo.jpeg":        "my.photo_splits.zip",
		`C:\Users\me\pic.jpg`:  "pic_splits.zip",
		"":                     "image_splits.zip",
		".png":                 "image_splits.zip",
		"dir/no_extension":     "no_extension_splits.zip",
	}
	for in, want := range tests {
		if got := ArchiveName(in); got != want {
			t.Errorf("ArchiveName(%q): got %s, want %s", in, got, want)
		}
	}
}
