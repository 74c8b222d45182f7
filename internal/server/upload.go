package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kiesman99/imgsplit/internal/splitter"
)

// uploadField is the multipart field carrying the image
const uploadField = "image"

// multipartMemory is how much of a multipart body is held in memory
// before spilling to temporary files
const multipartMemory = 8 << 20

// readUpload reads and decodes the image in the multipart field "image"
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*splitter.Source, error) {
	// leave room for the multipart framing around the file itself
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+64<<10)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errUploadTooLarge
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, errMissingUpload
		}
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errMissingUpload
		}
		return nil, fmt.Errorf("read upload: %w", err)
	}
	defer file.Close()

	if header.Size > s.maxUpload {
		return nil, errUploadTooLarge
	}

	return splitter.LoadReader(header.Filename, file, s.maxUpload, s.accepted)
}
