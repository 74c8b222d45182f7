package imagefmt

import "bytes"

var (
	magicPNG     = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	magicJPEG    = []byte{0xFF, 0xD8, 0xFF}
	magicGIF87   = []byte("GIF87a")
	magicGIF89   = []byte("GIF89a")
	magicBMP     = []byte("BM")
	magicTIFFLE  = []byte{'I', 'I', 0x2A, 0x00}
	magicTIFFBE  = []byte{'M', 'M', 0x00, 0x2A}
	magicRIFF    = []byte("RIFF")
	magicWEBPTag = []byte("WEBP")
)

// Sniff detects the image format from the leading bytes of data.
// It returns Unknown when no signature matches.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicPNG):
		return PNG
	case bytes.HasPrefix(data, magicJPEG):
		return JPEG
	case bytes.HasPrefix(data, magicGIF87), bytes.HasPrefix(data, magicGIF89):
		return GIF
	case bytes.HasPrefix(data, magicTIFFLE), bytes.HasPrefix(data, magicTIFFBE):
		return TIFF
	case len(data) >= 12 && bytes.HasPrefix(data, magicRIFF) && bytes.Equal(data[8:12], magicWEBPTag):
		return WEBP
	case len(data) >= 14 && bytes.HasPrefix(data, magicBMP):
		return BMP
	}
	return Unknown
}

// Detect prefers the sniffed content type and falls back to the
// declared filename extension when the content is not recognised.
func Detect(data []byte, filename string) Format {
	if f := Sniff(data); f != Unknown {
		return f
	}
	return FromFilename(filename)
}

// Resolve picks the output format for encoded slices. An explicitly
// requested format wins over the source format; anything that cannot be
// encoded falls back to PNG.
func Resolve(requested, source Format, encodable func(Format) bool) Format {
	if requested.Known() && encodable(requested) {
		return requested
	}
	if source.Known() && encodable(source) {
		return source
	}
	return PNG
}
