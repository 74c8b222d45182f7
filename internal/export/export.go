// Package export writes the slices of a split to disk or a stream
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kiesman99/imgsplit/internal/splitter"
)

// Stdout is the output reference that streams the archive to standard output
const Stdout = "-"

// ErrTerminal is returned when binary output would be written to a terminal
var ErrTerminal = errors.New("didn't specify output directory and standard output is a terminal")

// Files writes every slice into dir, creating it if needed, and returns
// the written paths in slice order
func Files(dir string, result *splitter.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(result.Slices))
	for _, s := range result.Slices {
		path := filepath.Join(dir, s.Filename)
		if err := os.WriteFile(path, s.Data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Zip writes the archive of result into dir and returns its path
func Zip(dir string, result *splitter.Result) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, result.ArchiveName())
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := splitter.WriteArchive(file, result.Entries()); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Stream writes the archive of result to w
func Stream(w io.Writer, result *splitter.Result) error {
	return splitter.WriteArchive(w, result.Entries())
}

// IsTerminal reports whether f is a character device
func IsTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
