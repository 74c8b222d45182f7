package server

import (
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/kiesman99/imgsplit/internal/api"
	"github.com/kiesman99/imgsplit/internal/config"
	"github.com/kiesman99/imgsplit/internal/session"
	"github.com/kiesman99/imgsplit/internal/splitter"
	"github.com/kiesman99/imgsplit/pkg/imagefmt"
)

// Server implements the ServerInterface from the generated API
type Server struct {
	startTime time.Time
	version   string
	splitter  *splitter.Splitter
	accepted  []imagefmt.Format
	maxUpload int64
	sessions  *session.Store
}

// NewServer creates a new server instance
func NewServer(version string, cfg *config.Config, sessions *session.Store) *Server {
	return &Server{
		startTime: time.Now(),
		version:   version,
		splitter:  cfg.Splitter(),
		accepted:  cfg.Accepted(),
		maxUpload: cfg.Server.MaxUploadBytes,
		sessions:  sessions,
	}
}

// GetHealth implements the health check endpoint
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	uptime := int(time.Since(s.startTime).Seconds())
	sessions := s.sessions.Len()

	response := api.HealthResponse{
		Status:    api.Healthy,
		Timestamp: time.Now(),
		Uptime:    &uptime,
		Version:   &s.version,
		Sessions:  &sessions,
	}

	writeJSON(w, http.StatusOK, response)
}

// GetLimits reports the accepted upload formats and slice count bounds
func (s *Server) GetLimits(w http.ResponseWriter, r *http.Request) {
	formats := make([]api.ImageFormat, len(s.accepted))
	for i, f := range s.accepted {
		formats[i] = api.ImageFormat(f.String())
	}

	writeJSON(w, http.StatusOK, api.LimitsResponse{
		MinCount:        splitter.MinCount,
		MaxCount:        s.splitter.Limits().Max(),
		AcceptedFormats: formats,
		MaxUploadBytes:  s.maxUpload,
	})
}

// SplitImage loads the uploaded image, splits it and answers with the
// combined download in a single round trip
func (s *Server) SplitImage(w http.ResponseWriter, r *http.Request, params api.SplitImageParams) {
	requestID := requestIDFrom(r)

	opts, err := splitOptions(params.Direction, params.Count, params.Format)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	src, err := s.readUpload(w, r)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	result, err := s.splitter.Split(r.Context(), src, opts)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	filename, contentType, data, err := result.Download()
	if err != nil {
		log.Printf("Error building archive for %s: %v", src.Name, err)
		s.handleError(w, err, requestID)
		return
	}

	writeFile(w, requestID, filename, contentType, data)
}

// CreateSession starts a session holding the uploaded image
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	src, err := s.readUpload(w, r)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	sess := s.sessions.Create(src)
	w.Header().Set("X-Request-ID", requestID)
	w.Header().Set("Location", sessionPath(sess.ID))
	writeJSON(w, http.StatusCreated, sessionResponse(sess))
}

// GetSession describes a session and the slices of its latest split
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, sessionId string) {
	requestID := requestIDFrom(r)

	sess, err := s.sessions.Get(sessionId)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	w.Header().Set("X-Request-ID", requestID)
	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

// DeleteSession discards a session and everything it holds
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, sessionId string) {
	requestID := requestIDFrom(r)

	if !s.sessions.Delete(sessionId) {
		s.handleError(w, session.ErrNotFound, requestID)
		return
	}

	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceSessionImage swaps in a new upload. Slices of the previous
// image are dropped.
func (s *Server) ReplaceSessionImage(w http.ResponseWriter, r *http.Request, sessionId string) {
	requestID := requestIDFrom(r)

	// fail fast before reading a potentially large body
	if _, err := s.sessions.Get(sessionId); err != nil {
		s.handleError(w, err, requestID)
		return
	}

	src, err := s.readUpload(w, r)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	sess, err := s.sessions.ReplaceSource(sessionId, src)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	w.Header().Set("X-Request-ID", requestID)
	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

// SplitSession splits the session image. A successful split replaces
// the slices of any earlier one; a failed split leaves them untouched.
func (s *Server) SplitSession(w http.ResponseWriter, r *http.Request, sessionId string) {
	requestID := requestIDFrom(r)

	var req api.SplitSessionJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON",
			"Invalid JSON in request body", &requestID, nil)
		return
	}

	opts, err := splitOptions(req.Direction, req.Count, req.Format)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	sess, err := s.sessions.Get(sessionId)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	result, err := s.splitter.Split(r.Context(), sess.Source, opts)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	sess, err = s.sessions.SetResult(sessionId, sess.Source, result)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	log.Printf("Session %s: split %s into %d %s slices", sess.ID, sess.Source.Name, len(result.Slices), result.Direction)

	w.Header().Set("X-Request-ID", requestID)
	writeJSON(w, http.StatusOK, splitResponse(sess.ID, result))
}

// GetSlice serves one slice of the latest split. index is 1-based, like
// the slice filenames.
func (s *Server) GetSlice(w http.ResponseWriter, r *http.Request, sessionId string, index int) {
	requestID := requestIDFrom(r)

	result, err := s.latestResult(sessionId)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	if index < 1 || index > len(result.Slices) {
		s.writeErrorResponse(w, http.StatusNotFound, "SLICE_NOT_FOUND",
			fmt.Sprintf("Slice %d does not exist", index), &requestID, map[string]interface{}{
				"count": len(result.Slices),
			})
		return
	}

	slice := result.Slices[index-1]
	writeFile(w, requestID, slice.Filename, slice.ContentType(), slice.Data)
}

// GetArchive serves every slice of the latest split as one download
func (s *Server) GetArchive(w http.ResponseWriter, r *http.Request, sessionId string) {
	requestID := requestIDFrom(r)

	result, err := s.latestResult(sessionId)
	if err != nil {
		s.handleError(w, err, requestID)
		return
	}

	filename, contentType, data, err := result.Download()
	if err != nil {
		log.Printf("Error building archive for session %s: %v", sessionId, err)
		s.handleError(w, err, requestID)
		return
	}

	writeFile(w, requestID, filename, contentType, data)
}

func (s *Server) latestResult(sessionId string) (*splitter.Result, error) {
	sess, err := s.sessions.Get(sessionId)
	if err != nil {
		return nil, err
	}
	if sess.Result == nil {
		return nil, errNoSlices
	}
	return sess.Result, nil
}

// splitOptions converts API parameters to splitter options
func splitOptions(direction api.Direction, count int, format *api.ImageFormat) (splitter.Options, error) {
	dir, err := splitter.ParseDirection(string(direction))
	if err != nil {
		return splitter.Options{}, err
	}

	opts := splitter.Options{
		Direction: dir,
		Count:     count,
	}

	if format != nil && *format != "" {
		f, err := imagefmt.Parse(string(*format))
		if err != nil {
			return splitter.Options{}, &splitter.ParamError{Field: "format", Message: err.Error()}
		}
		opts.Format = f
	}

	return opts, nil
}

func sessionPath(id string) string {
	return APIPrefix + "/sessions/" + id
}

func sessionResponse(sess session.Session) api.SessionResponse {
	size := sess.Source.Size
	response := api.SessionResponse{
		SessionId: sess.ID,
		State:     api.SessionResponseState(sess.State()),
		Filename:  sess.Source.Name,
		Width:     sess.Source.Width(),
		Height:    sess.Source.Height(),
		Format:    api.ImageFormat(sess.Source.Format.String()),
		SizeBytes: &size,
		CreatedAt: sess.CreatedAt,
	}

	if sess.Result != nil {
		split := splitResponse(sess.ID, sess.Result)
		response.Split = &split
	}

	return response
}

func splitResponse(id string, result *splitter.Result) api.SplitResponse {
	slices := make([]api.SliceInfo, len(result.Slices))
	for i, sl := range result.Slices {
		slices[i] = api.SliceInfo{
			Index:       sl.Index + 1,
			Filename:    sl.Filename,
			ContentType: sl.ContentType(),
			SizeBytes:   len(sl.Data),
			Rect: api.Rectangle{
				X0: sl.Bounds.Min.X,
				Y0: sl.Bounds.Min.Y,
				X1: sl.Bounds.Max.X,
				Y1: sl.Bounds.Max.Y,
			},
			Url: sessionPath(id) + "/slices/" + strconv.Itoa(sl.Index+1),
		}
	}

	return api.SplitResponse{
		SessionId:       id,
		Direction:       api.Direction(result.Direction.String()),
		Count:           len(result.Slices),
		Format:          api.ImageFormat(result.Format.String()),
		Slices:          slices,
		ArchiveFilename: result.ArchiveName(),
		ArchiveUrl:      sessionPath(id) + "/archive",
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeFile sends data as a named attachment
func writeFile(w http.ResponseWriter, requestID, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("X-Request-ID", requestID)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// requestIDFrom returns the id assigned by the RequestID middleware, or a
// fresh one when the handler runs without it
func requestIDFrom(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}
