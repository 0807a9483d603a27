package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

type processImageRequest struct {
	Image     string `json:"image"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

type processImageResponse struct {
	PartnerID      string `json:"partnerId"`
	RecognizedText string `json:"recognizedText"`
	ScreenType     string `json:"screenType"`
	PartnerName    string `json:"partnerName"`
}

type detailedErrorResponse struct {
	Error   string       `json:"error"`
	Details errorDetails `json:"details"`
}

type errorDetails struct {
	Cause string `json:"cause"`
	Stack string `json:"stack"`
}

func (s *Server) writeDetailedError(w http.ResponseWriter, err error) {
	cause := ""
	if u := errors.Unwrap(err); u != nil {
		cause = u.Error()
	}
	s.writeJSON(w, http.StatusBadRequest, detailedErrorResponse{
		Error:   err.Error(),
		Details: errorDetails{Cause: cause, Stack: errorChain(err)},
	})
}

// errorChain renders the full unwrap chain, one frame per line, outermost
// first.
func errorChain(err error) string {
	var b strings.Builder
	for e := err; e != nil; e = errors.Unwrap(e) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (s *Server) handleProcessImage(w http.ResponseWriter, r *http.Request) {
	var req processImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetailedError(w, errors.New("invalid request body"))
		return
	}
	if req.Image == "" {
		s.writeDetailedError(w, errors.New("image is required"))
		return
	}
	if req.UserID == "" {
		s.writeDetailedError(w, errors.New("userId is required"))
		return
	}

	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		timestamp = time.Now().UTC()
	}

	result, err := s.screenshots.Process(r.Context(), req.Image, req.UserID, timestamp)
	if err != nil {
		s.logger.Error("process image failed", "user_id", req.UserID, "error", err)
		s.writeDetailedError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, processImageResponse{
		PartnerID:      result.PartnerID,
		RecognizedText: result.RecognizedText,
		ScreenType:     string(result.ScreenType),
		PartnerName:    result.PartnerName,
	})
}
