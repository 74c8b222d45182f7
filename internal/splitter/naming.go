package splitter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// Name returns the filename for the slice at 0-based index i.
// Output names are 1-based: split_1.png, split_2.png, ...
func Name(i int, f imagefmt.Format) string {
	return fmt.Sprintf("split_%d.%s", i+1, f.Extension())
}

// ArchiveName returns the combined download name for an upload,
// "<basename>_splits.zip".
func ArchiveName(sourceName string) string {
	return baseName(sourceName) + "_splits.zip"
}

func baseName(name string) string {
	// uploads from browsers on Windows may carry backslash paths
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" || base == "." || base == "/" {
		return "image"
	}
	return base
}
