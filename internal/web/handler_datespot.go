package web

import (
	"encoding/json"
	"errors"
	"net/http"
)

type dateSpotRequest struct {
	Query  string `json:"query"`
	UserID string `json:"userId"`
}

type dateSpotResponse struct {
	Answer string `json:"answer"`
}

func (s *Server) handleSearchDateSpot(w http.ResponseWriter, r *http.Request) {
	var req dateSpotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetailedError(w, errors.New("invalid request body"))
		return
	}
	if req.Query == "" {
		s.writeDetailedError(w, errors.New("query is required"))
		return
	}

	answer, err := s.dateSpots.Search(r.Context(), req.Query)
	if err != nil {
		s.logger.Error("date spot search failed", "error", err)
		s.writeDetailedError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, dateSpotResponse{Answer: answer})
}
