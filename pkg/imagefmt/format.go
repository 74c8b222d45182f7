package imagefmt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an image container format
type Format int

// Known formats. Unknown is the zero value.
const (
	Unknown Format = iota
	PNG
	JPEG
	GIF
	BMP
	TIFF
	WEBP
)

var names = map[Format]string{
	PNG:  "png",
	JPEG: "jpeg",
	GIF:  "gif",
	BMP:  "bmp",
	TIFF: "tiff",
	WEBP: "webp",
}

// All returns every known format in a stable order
func All() []Format {
	return []Format{PNG, JPEG, GIF, BMP, TIFF, WEBP}
}

// String returns the lowercase format name, or "unknown"
func (f Format) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return "unknown"
}

// Extension returns the file extension (without dot) used for output files.
// It is the lowercased format name, so JPEG files end in ".jpeg".
func (f Format) Extension() string {
	return f.String()
}

// MIMEType returns the content type served for this format
func (f Format) MIMEType() string {
	if f == Unknown {
		return "application/octet-stream"
	}
	return "image/" + f.Extension()
}

// Known reports whether f is one of the enumerated formats
func (f Format) Known() bool {
	_, ok := names[f]
	return ok
}

// Parse maps a format name or extension to a Format.
// Accepts "jpg", "tif" and a leading dot.
func Parse(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch s {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "webp":
		return WEBP, nil
	}
	return Unknown, fmt.Errorf("unknown image format %q", s)
}

// ParseList parses a list of format names, rejecting duplicates silently
func ParseList(list []string) ([]Format, error) {
	seen := make(map[Format]bool, len(list))
	out := make([]Format, 0, len(list))
	for _, s := range list {
		f, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

// FromFilename returns the format implied by a filename's extension
func FromFilename(name string) Format {
	f, err := Parse(filepath.Ext(name))
	if err != nil {
		return Unknown
	}
	return f
}

// Contains reports whether f is in list
func Contains(list []Format, f Format) bool {
	for _, x := range list {
		if x == f {
			return true
		}
	}
	return false
}
