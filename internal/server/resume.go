package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

// MaxResumeBytes is the largest resume accepted for upload.
const MaxResumeBytes = 500 * 1024

const pdfMediaType = "application/pdf"

// EncodeDataURI returns data as a base64 data URI.
func EncodeDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a base64 data URI into its media type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("malformed data URI: missing payload")
	}
	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, errors.New("malformed data URI: payload is not base64")
	}
	if mediaType == "" {
		mediaType = "text/plain"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("malformed data URI: %w", err)
	}
	return mediaType, data, nil
}

// handleUploadResume stores a PDF from the "resume" multipart field inline
// in the profile.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	// Leave room for the multipart envelope around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, MaxResumeBytes+64*1024)

	file, header, err := r.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, &ErrValidation{Field: "resume", Message: "file size must be less than 500KB"})
			return
		}
		s.writeError(w, &ErrValidation{Field: "resume", Message: "a PDF file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, MaxResumeBytes+1))
	if err != nil {
		s.writeError(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	if len(data) > MaxResumeBytes {
		s.writeError(w, &ErrValidation{Field: "resume", Message: "file size must be less than 500KB"})
		return
	}
	if http.DetectContentType(data) != pdfMediaType {
		s.writeError(w, &ErrValidation{Field: "resume", Message: "file must be a PDF"})
		return
	}

	uri := EncodeDataURI(pdfMediaType, data)
	s.dispatch(r, store.UpdateProfile(types.ProfilePatch{ResumeURL: &uri}))
	s.logger.Info("resume uploaded", zap.String("filename", header.Filename), zap.Int("bytes", len(data)))

	s.jsonResponse(w, http.StatusOK, map[string]any{"message": "Resume uploaded", "bytes": len(data)})
}

// handleDeleteResume removes the stored resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	empty := ""
	s.dispatch(r, store.UpdateProfile(types.ProfilePatch{ResumeURL: &empty}))
	w.WriteHeader(http.StatusNoContent)
}
