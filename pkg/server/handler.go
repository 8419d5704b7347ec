package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for chat rooms.
type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// RegisterRoutes attaches the room endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/rooms/{room}/messages", h.handlePostMessage)
	r.Get("/rooms/{room}/messages", h.handleHistory)
}

// --- DTOs ---

type postMessageRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// --- Handlers ---

func (h *Handler) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Author == "" {
		writeError(w, http.StatusBadRequest, "Missing author")
		return
	}

	result, err := h.service.PostMessage(r.Context(), chi.URLParam(r, "room"), req.Author, req.Content)
	if err != nil {
		writeServiceError(w, err, "Could not post message")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := h.service.History(r.Context(), chi.URLParam(r, "room"), limit)
	if err != nil {
		writeServiceError(w, err, "Could not fetch history")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidRoom):
		writeError(w, http.StatusBadRequest, "Invalid room name")
	case errors.Is(err, ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "Message is empty")
	default:
		writeError(w, http.StatusInternalServerError, message)
	}
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
