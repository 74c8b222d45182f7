package imagefmt

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{".PNG", PNG},
		{"jpg", JPEG},
		{"JPEG", JPEG},
		{"gif", GIF},
		{"bmp", BMP},
		{"tif", TIFF},
		{"tiff", TIFF},
		{" webp ", WEBP},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := Parse("psd"); err == nil {
		t.Error("Parse should fail for an unknown format")
	}
}

func TestParseList_Dedup(t *testing.T) {
	got, err := ParseList([]string{"png", "jpg", "jpeg", "png"})
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if len(got) != 2 || got[0] != PNG || got[1] != JPEG {
		t.Errorf("ParseList: got %v, want [png jpeg]", got)
	}

	if _, err := ParseList([]string{"png", "raw"}); err == nil {
		t.Error("ParseList should fail when one entry is unknown")
	}
}

func TestExtensionAndMIME(t *testing.T) {
	if JPEG.Extension() != "jpeg" {
		t.Errorf("JPEG extension: got %s, want jpeg", JPEG.Extension())
	}
	if PNG.MIMEType() != "image/png" {
		t.Errorf("PNG MIME: got %s", PNG.MIMEType())
	}
	if Unknown.MIMEType() != "application/octet-stream" {
		t.Errorf("Unknown MIME: got %s", Unknown.MIMEType())
	}
	if Unknown.Known() {
		t.Error("Unknown must not be Known")
	}
}

func TestSniff(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})

	var pngBuf, jpegBuf, gifBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(&jpegBuf, img, nil); err != nil {
		t.Fatal(err)
	}
	if err := gif.Encode(&gifBuf, img, nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", pngBuf.Bytes(), PNG},
		{"jpeg", jpegBuf.Bytes(), JPEG},
		{"gif", gifBuf.Bytes(), GIF},
		{"tiff little endian", []byte{'I', 'I', 0x2A, 0x00, 0, 0, 0, 0}, TIFF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), WEBP},
		{"bmp", append([]byte("BM"), make([]byte, 20)...), BMP},
		{"text", []byte("hello, world"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.data); got != tt.want {
				t.Errorf("Sniff: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect_FallsBackToExtension(t *testing.T) {
	if got := Detect([]byte("not an image"), "photo.JPG"); got != JPEG {
		t.Errorf("Detect: got %v, want jpeg", got)
	}
	if got := Detect([]byte("not an image"), "notes.txt"); got != Unknown {
		t.Errorf("Detect: got %v, want unknown", got)
	}
}

func TestResolve(t *testing.T) {
	noWebP := func(f Format) bool { return f != WEBP }

	tests := []struct {
		name      string
		requested Format
		source    Format
		want      Format
	}{
		{"source format kept", Unknown, JPEG, JPEG},
		{"requested wins", GIF, JPEG, GIF},
		{"unencodable source falls back", Unknown, WEBP, PNG},
		{"unencodable request uses source", WEBP, BMP, BMP},
		{"nothing known", Unknown, Unknown, PNG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.requested, tt.source, noWebP); got != tt.want {
				t.Errorf("Resolve: got %v, want %v", got, tt.want)
			}
		})
	}
}
