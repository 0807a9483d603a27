package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tyonekura/koibumi/internal/service"
)

type Server struct {
	suggestions *service.SuggestionService
	screenshots *service.ScreenshotService
	chatbot     *service.ChatbotService
	dateSpots   *service.DateSpotService
	mux         *http.ServeMux
	logger      *slog.Logger
}

func NewServer(
	suggestions *service.SuggestionService,
	screenshots *service.ScreenshotService,
	chatbot *service.ChatbotService,
	dateSpots *service.DateSpotService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		suggestions: suggestions,
		screenshots: screenshots,
		chatbot:     chatbot,
		dateSpots:   dateSpots,
		mux:         http.NewServeMux(),
		logger:      logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /generate-messages", s.handleGenerateMessages)
	s.mux.HandleFunc("POST /process-image", s.handleProcessImage)
	s.mux.HandleFunc("POST /generate-chatbot-response", s.handleChatbotResponse)
	s.mux.HandleFunc("POST /search-datespot", s.handleSearchDateSpot)
}

// corsHeaders permits calls from the mobile client regardless of origin and
// answers preflight requests with an empty 200.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, corsHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
