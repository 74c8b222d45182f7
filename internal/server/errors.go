package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/kiesman99/imgsplit/internal/api"
	"github.com/kiesman99/imgsplit/internal/session"
	"github.com/kiesman99/imgsplit/internal/splitter"
)

var (
	errNoSlices       = errors.New("session has not been split yet")
	errMissingUpload  = errors.New("multipart field \"image\" is required")
	errUploadTooLarge = errors.New("upload exceeds the size limit")
)

// handleError maps domain errors to HTTP responses
func (s *Server) handleError(w http.ResponseWriter, err error, requestID string) {
	var paramErr *splitter.ParamError
	var loadErr *splitter.LoadError
	var encodeErr *splitter.EncodeError

	switch {
	case errors.As(err, &paramErr):
		s.writeValidationErrorResponse(w, paramErr.Field, paramErr.Message, &requestID)

	case errors.Is(err, errMissingUpload):
		s.writeValidationErrorResponse(w, "image", err.Error(), &requestID)

	case errors.Is(err, errUploadTooLarge):
		s.writeErrorResponse(w, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE",
			"Upload exceeds the size limit", &requestID, map[string]interface{}{
				"max_upload_bytes": s.maxUpload,
			})

	case errors.As(err, &loadErr):
		details := map[string]interface{}{"filename": loadErr.Filename}
		if loadErr.Format.Known() {
			details["format"] = loadErr.Format.String()
		}
		s.writeErrorResponse(w, http.StatusUnprocessableEntity, "LOAD_ERROR",
			loadErr.Error(), &requestID, details)

	case errors.Is(err, session.ErrNotFound):
		s.writeErrorResponse(w, http.StatusNotFound, "SESSION_NOT_FOUND",
			"Session not found or expired", &requestID, nil)

	case errors.Is(err, errNoSlices):
		s.writeErrorResponse(w, http.StatusConflict, "NO_SLICES",
			"Session has not been split yet", &requestID, nil)

	case errors.Is(err, session.ErrStale):
		s.writeErrorResponse(w, http.StatusConflict, "STALE_SESSION",
			"Session image was replaced during the split", &requestID, nil)

	case errors.As(err, &encodeErr):
		log.Printf("Encode failure: %v", err)
		s.writeErrorResponse(w, http.StatusInternalServerError, "ENCODE_ERROR",
			encodeErr.Error(), &requestID, map[string]interface{}{
				"filename": encodeErr.Filename,
				"format":   encodeErr.Format.String(),
			})

	case errors.Is(err, context.Canceled):
		// client went away, nobody reads the response
		return

	case errors.Is(err, context.DeadlineExceeded):
		s.writeErrorResponse(w, http.StatusGatewayTimeout, "TIMEOUT",
			"Split did not finish in time", &requestID, nil)

	default:
		log.Printf("Internal error: %v", err)
		s.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Internal server error", &requestID, nil)
	}
}

// ParamErrorHandler answers parameter binding failures from the generated
// router with the validation envelope
func (s *Server) ParamErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	requestID := requestIDFrom(r)

	field := "request"
	var required *api.RequiredParamError
	var invalid *api.InvalidParamFormatError
	switch {
	case errors.As(err, &required):
		field = required.ParamName
	case errors.As(err, &invalid):
		field = invalid.ParamName
	}

	s.writeValidationErrorResponse(w, field, err.Error(), &requestID)
}

// writeErrorResponse writes a standard error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string, requestID *string, details map[string]interface{}) {
	response := api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		RequestId: requestID,
	}

	if details != nil {
		response.Details = &details
	}

	w.Header().Set("Content-Type", "application/json")
	if requestID != nil {
		w.Header().Set("X-Request-ID", *requestID)
	}
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// writeValidationErrorResponse writes a validation error response
func (s *Server) writeValidationErrorResponse(w http.ResponseWriter, field, message string, requestID *string) {
	response := api.ValidationErrorResponse{
		Error:     api.VALIDATIONERROR,
		Message:   fmt.Sprintf("Invalid %s: %s", field, message),
		RequestId: requestID,
		ValidationErrors: []struct {
			Code    *string `json:"code,omitempty"`
			Field   string  `json:"field"`
			Message string  `json:"message"`
		}{
			{
				Field:   field,
				Message: message,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if requestID != nil {
		w.Header().Set("X-Request-ID", *requestID)
	}
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(response)
}
