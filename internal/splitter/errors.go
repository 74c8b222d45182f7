package splitter

import (
	"errors"
	"fmt"

	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrLoad              = errors.New("image could not be loaded")
	ErrInvalidParameters = errors.New("invalid split parameters")
	ErrOutOfBounds       = errors.New("rectangle outside image bounds")
	ErrEncode            = errors.New("slice could not be encoded")
)

// LoadError reports an upload that is not a decodable, accepted image
type LoadError struct {
	Filename string
	Format   imagefmt.Format
	Err      error
}

func (e *LoadError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("load image: %v", e.Err)
	}
	return fmt.Sprintf("load image %q: %v", e.Filename, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// ParamError reports a rejected split parameter
type ParamError struct {
	Field   string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ParamError) Is(target error) bool { return target == ErrInvalidParameters }

func paramErrorf(field, format string, args ...interface{}) *ParamError {
	return &ParamError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// EncodeError reports a slice that failed to encode. The whole batch is
// aborted when one occurs.
type EncodeError struct {
	Filename string
	Format   imagefmt.Format
	Err      error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s as %s: %v", e.Filename, e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Is(target error) bool { return target == ErrEncode }
