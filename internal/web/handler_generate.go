package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tyonekura/koibumi/internal/domain"
	"github.com/tyonekura/koibumi/internal/llm"
	"github.com/tyonekura/koibumi/internal/prompt"
	"github.com/tyonekura/koibumi/internal/service"
)

type generateRequest struct {
	RecognizedText       string       `json:"recognizedText"`
	PartnerName          string       `json:"partnerName"`
	Tone                 *domain.Tone `json:"tone"`
	TextLength           int          `json:"textLength"`
	UseSecondaryProvider bool         `json:"useSecondaryProvider"`
}

type generateResponse struct {
	Messages []string `json:"messages"`
	Provider string   `json:"provider"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleGenerateMessages(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Tone == nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tone is required"})
		return
	}
	switch req.TextLength {
	case 50, 100, 150:
	default:
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "textLength must be 50, 100 or 150"})
		return
	}
	if err := service.ValidateTone(*req.Tone); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := s.suggestions.Generate(r.Context(), service.GenerateRequest{
		RecognizedText:       req.RecognizedText,
		PartnerName:          req.PartnerName,
		Tone:                 *req.Tone,
		TextLength:           req.TextLength,
		UseSecondaryProvider: req.UseSecondaryProvider,
	})
	if err != nil {
		var exhausted *llm.ExhaustedError
		switch {
		case errors.As(err, &exhausted):
			s.logger.Error("all providers exhausted", "error", err)
		case errors.Is(err, prompt.ErrNoCandidates):
			s.logger.Error("completion unparseable", "error", err)
		default:
			s.logger.Error("generation failed", "error", err)
		}
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, generateResponse{Messages: result.Messages, Provider: result.Provider})
}
