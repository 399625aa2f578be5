// File: internal/infra/api/server.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ShamanRShetty/Mental-Wellness/internal/domain"
	"github.com/ShamanRShetty/Mental-Wellness/internal/domain/model"
	"github.com/ShamanRShetty/Mental-Wellness/internal/usecase"
)

// Server exposes the wellness API over chi.
type Server struct {
	chat      usecase.ChatUseCase
	mood      usecase.MoodUseCase
	journal   usecase.JournalUseCase
	resources usecase.ResourceUseCase
	translate usecase.TranslateUseCase
	apiKey    string
	log       *zerolog.Logger
}

func NewServer(
	chat usecase.ChatUseCase,
	mood usecase.MoodUseCase,
	journal usecase.JournalUseCase,
	resources usecase.ResourceUseCase,
	translate usecase.TranslateUseCase,
	apiKey string,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		chat:      chat,
		mood:      mood,
		journal:   journal,
		resources: resources,
		translate: translate,
		apiKey:    apiKey,
		log:       logger,
	}
}

// Router builds the full route tree with middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/session", s.handleStartSession)
			r.Post("/message", s.handleSendMessage)
			r.Get("/history/{sessionID}", s.handleHistory)
			r.Delete("/history/{sessionID}", s.handleClearHistory)
			r.Get("/trend/{sessionID}", s.handleSentimentTrend)
		})

		r.Route("/mood", func(r chi.Router) {
			r.Post("/", s.handleLogMood)
			r.Get("/{sessionID}", s.handleMoodHistory)
			r.Get("/{sessionID}/statistics", s.handleMoodStatistics)
			r.Get("/{sessionID}/insights", s.handleMoodInsights)
		})

		r.Route("/journal", func(r chi.Router) {
			r.Get("/prompts", s.handleJournalPrompts)
			r.Post("/", s.handleCreateJournal)
			r.Get("/{sessionID}", s.handleListJournal)
			r.Get("/{sessionID}/{entryID}", s.handleGetJournal)
			r.Put("/{sessionID}/{entryID}", s.handleUpdateJournal)
			r.Delete("/{sessionID}/{entryID}", s.handleDeleteJournal)
		})

		r.Route("/resources", func(r chi.Router) {
			r.Get("/", s.handleListResources)
			r.Get("/emergency", s.handleEmergencyResources)
			r.Get("/{resourceID}", s.handleGetResource)
			r.Post("/{resourceID}/helpful", s.handleMarkHelpful)
			r.With(s.requireAPIKey).Post("/", s.handleAddResource)
		})

		r.Post("/translate", s.handleTranslate)
	})

	return Chain(r,
		TraceID(s.log),
		Recover(s.log),
		RequestLog(s.log),
		Timeout(30*time.Second),
	)
}

// requireAPIKey guards mutating resource routes with a bearer key.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			s.log.Error().Msg("resource API key is not configured")
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if parts[1] != s.apiKey {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---- chat ----

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if !decode(w, r, &req) {
		return
	}
	sess, err := s.chat.StartSession(r.Context(), req.Language)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, sess)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}
	if !decode(w, r, &req) {
		return
	}
	reply, err := s.chat.SendMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, reply)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.chat.History(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, history)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.chat.ClearHistory(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (s *Server) handleSentimentTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := s.chat.SentimentTrend(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, trend)
}

// ---- mood ----

func (s *Server) handleLogMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID  string   `json:"sessionId"`
		Mood       string   `json:"mood"`
		Intensity  int      `json:"intensity"`
		Note       string   `json:"note"`
		Activities []string `json:"activities"`
		Triggers   []string `json:"triggers"`
	}
	if !decode(w, r, &req) {
		return
	}
	entry := &model.MoodEntry{
		SessionID:  req.SessionID,
		Mood:       model.Mood(req.Mood),
		Intensity:  req.Intensity,
		Note:       req.Note,
		Activities: req.Activities,
		Triggers:   req.Triggers,
	}
	if err := s.mood.LogMood(r.Context(), entry); err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, entry)
}

func (s *Server) handleMoodHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.mood.MoodHistory(r.Context(), chi.URLParam(r, "sessionID"), queryInt(r, "days", 30))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, entries)
}

func (s *Server) handleMoodStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.mood.Statistics(r.Context(), chi.URLParam(r, "sessionID"), queryInt(r, "days", 30))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}

func (s *Server) handleMoodInsights(w http.ResponseWriter, r *http.Request) {
	insight, err := s.mood.Insights(r.Context(), chi.URLParam(r, "sessionID"), queryInt(r, "days", 30))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, insight)
}

// ---- journal ----

func (s *Server) handleJournalPrompts(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.journal.Prompts())
}

func (s *Server) handleCreateJournal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string   `json:"sessionId"`
		Title     string   `json:"title"`
		Content   string   `json:"content"`
		Mood      string   `json:"mood"`
		Tags      []string `json:"tags"`
		Prompt    string   `json:"prompt"`
	}
	if !decode(w, r, &req) {
		return
	}
	entry, err := s.journal.CreateEntry(r.Context(), &model.JournalEntry{
		SessionID: req.SessionID,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      model.Mood(req.Mood),
		Tags:      req.Tags,
		Prompt:    req.Prompt,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, entry)
}

func (s *Server) handleListJournal(w http.ResponseWriter, r *http.Request) {
	entries, total, err := s.journal.ListEntries(r.Context(),
		chi.URLParam(r, "sessionID"), queryInt(r, "limit", 20), queryInt(r, "offset", 0))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}

func (s *Server) handleGetJournal(w http.ResponseWriter, r *http.Request) {
	entry, err := s.journal.GetEntry(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "entryID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, entry)
}

func (s *Server) handleUpdateJournal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Mood    string   `json:"mood"`
		Tags    []string `json:"tags"`
	}
	if !decode(w, r, &req) {
		return
	}
	entry, err := s.journal.UpdateEntry(r.Context(), &model.JournalEntry{
		ID:        chi.URLParam(r, "entryID"),
		SessionID: chi.URLParam(r, "sessionID"),
		Title:     req.Title,
		Content:   req.Content,
		Mood:      model.Mood(req.Mood),
		Tags:      req.Tags,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteJournal(w http.ResponseWriter, r *http.Request) {
	if err := s.journal.DeleteEntry(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "entryID")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ---- resources ----

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	f := model.ResourceFilter{
		Category: model.ResourceCategory(r.URL.Query().Get("category")),
		Language: r.URL.Query().Get("language"),
	}
	if tags := r.URL.Query().Get("tags"); tags != "" {
		f.Tags = strings.Split(tags, ",")
	}
	if em := r.URL.Query().Get("emergency"); em != "" {
		v := em == "true"
		f.IsEmergency = &v
	}
	out, err := s.resources.ListResources(r.Context(), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, out)
}

func (s *Server) handleEmergencyResources(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("language")
	if lang == "" {
		lang = "en"
	}
	out, err := s.resources.EmergencyResources(r.Context(), lang)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, out)
}

func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	res, err := s.resources.GetResource(r.Context(), chi.URLParam(r, "resourceID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, res)
}

func (s *Server) handleMarkHelpful(w http.ResponseWriter, r *http.Request) {
	if err := s.resources.MarkHelpful(r.Context(), chi.URLParam(r, "resourceID")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"helpful": true})
}

func (s *Server) handleAddResource(w http.ResponseWriter, r *http.Request) {
	var res model.Resource
	if !decode(w, r, &res) {
		return
	}
	created, err := s.resources.AddResource(r.Context(), &res)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, created)
}

// ---- translate ----

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text           string `json:"text"`
		TargetLanguage string `json:"targetLanguage"`
	}
	if !decode(w, r, &req) {
		return
	}
	out, err := s.translate.Translate(r.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, out)
}

// ---- helpers ----

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}

// fail maps domain errors to HTTP statuses; everything unexpected is a 500
// with the detail kept in the log, not the response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "I'm receiving a lot of messages right now. Please wait a moment and try again.")
	case errors.Is(err, domain.ErrQuotaExceeded):
		writeError(w, http.StatusTooManyRequests, "daily usage limit reached, please try again tomorrow")
	default:
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
