package splitter

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/maruel/natural"
)

// Entry is one named buffer inside an archive
type Entry struct {
	Name string
	Data []byte
}

// Archive packs entries into a deflate-compressed zip. Entry names must
// be unique.
func Archive(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteArchive(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteArchive streams the zip for entries to w
func WriteArchive(w io.Writer, entries []Entry) error {
	zw := zip.NewWriter(w)
	seen := make(map[string]bool, len(entries))
	modified := time.Now()

	for _, e := range entries {
		if seen[e.Name] {
			zw.Close()
			return fmt.Errorf("duplicate archive entry %q", e.Name)
		}
		seen[e.Name] = true

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			zw.Close()
			return fmt.Errorf("create entry %s: %w", e.Name, err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			zw.Close()
			return fmt.Errorf("write entry %s: %w", e.Name, err)
		}
	}

	return zw.Close()
}

// ReadArchive unpacks a zip produced by Archive. Entries come back in
// natural name order, so split_2 precedes split_10.
func ReadArchive(data []byte) ([]Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", f.Name, err)
		}
		entries = append(entries, Entry{Name: f.Name, Data: b})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name, entries[j].Name)
	})

	return entries, nil
}
