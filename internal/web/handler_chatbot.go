package web

import (
	"encoding/json"
	"net/http"
)

type chatbotRequest struct {
	UserMessage         string `json:"userMessage"`
	PartnerName         string `json:"partnerName"`
	ProfileInfo         string `json:"profileInfo"`
	ConversationHistory string `json:"conversationHistory"`
}

type chatbotResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChatbotResponse(w http.ResponseWriter, r *http.Request) {
	var req chatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.UserMessage == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "userMessage is required"})
		return
	}

	answer, err := s.chatbot.Respond(r.Context(), req.UserMessage, req.PartnerName, req.ProfileInfo, req.ConversationHistory)
	if err != nil {
		s.logger.Error("chatbot response failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, chatbotResponse{Response: answer})
}
