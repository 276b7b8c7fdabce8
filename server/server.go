// Package server exposes the question answering system over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gitaqa/gitaqa-go/gitadoc"
	"github.com/gitaqa/gitaqa-go/jsonx"
	"github.com/gitaqa/gitaqa-go/names"
	"github.com/gitaqa/gitaqa-go/qa"
)

// Server serves the question API.
type Server struct {
	system *qa.System
	logger *zap.Logger
	http   *http.Server
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the answer payload.
type AskResponse struct {
	Answer           string                     `json:"answer"`
	Sources          []gitadoc.DocumentMetadata `json:"sources"`
	Confidence       float64                    `json:"confidence"`
	RelatedQuestions []RelatedQuestion          `json:"related_questions,omitempty"`
}

// RelatedQuestion suggests a curated question near the user's query.
type RelatedQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(system *qa.System, listen string, logger *zap.Logger) *Server {
	s := &Server{system: system, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /ask", s.handleAsk)
	mux.HandleFunc("GET /categories", s.handleCategories)
	mux.HandleFunc("GET /categories/{category}", s.handleCategoryQuestions)
	mux.HandleFunc("GET /characters", s.handleCharacters)
	mux.HandleFunc("GET /stats", s.handleStats)

	s.http = &http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the context ends or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("question API listening", zap.String("addr", s.http.Addr))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req AskRequest
	if err := jsonx.NewDecoder(r.Body).Decode(&req); err != nil {
		questionLatency.WithLabelValues("error").Observe(time.Since(start).Seconds())
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result := s.system.AnswerQuestion(req.Question)

	switch res := result.(type) {
	case qa.Answered:
		questionLatency.WithLabelValues("answered").Observe(time.Since(start).Seconds())
		questionConfidence.Observe(res.Confidence)
		resp := AskResponse{
			Answer:     res.Text,
			Sources:    res.Sources,
			Confidence: res.Confidence,
		}
		for _, pair := range s.system.Related(req.Question) {
			resp.RelatedQuestions = append(resp.RelatedQuestions, RelatedQuestion{
				Question: pair.Question,
				Category: pair.Category,
			})
		}
		if resp.Sources == nil {
			resp.Sources = []gitadoc.DocumentMetadata{}
		}
		writeJSON(w, http.StatusOK, resp)
	case qa.NotFound:
		questionLatency.WithLabelValues("not_found").Observe(time.Since(start).Seconds())
		writeJSON(w, http.StatusOK, AskResponse{
			Answer:     qa.AnswerPrefix + res.Reason,
			Sources:    []gitadoc.DocumentMetadata{},
			Confidence: qa.ConfidenceNone,
		})
	case qa.Fault:
		questionLatency.WithLabelValues("error").Observe(time.Since(start).Seconds())
		status := http.StatusInternalServerError
		if res.Kind == qa.ErrorKindBadRequest {
			status = http.StatusBadRequest
		}
		s.logger.Error("question handling failed",
			zap.String("kind", string(res.Kind)),
			zap.String("message", res.Message))
		writeJSON(w, status, errorResponse{Error: res.Message})
	default:
		questionLatency.WithLabelValues("error").Observe(time.Since(start).Seconds())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "unexpected result"})
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": qa.Categories})
}

// CategoryResponse lists the curated questions filed under a category.
type CategoryResponse struct {
	Category  string   `json:"category"`
	Questions []string `json:"questions"`
}

func (s *Server) handleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	pairs := s.system.PairsByCategory(category)
	if len(pairs) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown category"})
		return
	}

	resp := CategoryResponse{Category: category, Questions: make([]string, 0, len(pairs))}
	for _, pair := range pairs {
		resp.Questions = append(resp.Questions, pair.Question)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCharacters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"characters": names.AllNames()})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.system.Stats())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonx.NewEncoder(w).Encode(v)
}

// RecordCorpusSize publishes corpus gauges after indexing.
func RecordCorpusSize(stats qa.Stats) {
	corpusDocuments.Set(float64(stats.Documents))
	corpusVerses.Set(float64(stats.Verses))
}
