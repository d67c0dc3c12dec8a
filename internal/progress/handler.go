package progress

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ocean-explorer/backend/internal/models"
)

// Resolver returns the progress store for the request's browser session.
type Resolver func(r *http.Request) (*Store, bool)

type Handler struct {
	resolve Resolver
}

func NewHandler(resolve Resolver) *Handler {
	return &Handler{resolve: resolve}
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}
	writeJSON(w, http.StatusOK, store.State())
}

func (h *Handler) CompleteChapter(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}
	state := store.Dispatch(CompleteChapter{ChapterID: mux.Vars(r)["chapterID"]})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) FindConnection(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	var req models.FindConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.ChapterID == "" || req.ConnectionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "chapter_id and connection_id are required"})
		return
	}

	state := store.Dispatch(FindConnection{ChapterID: req.ChapterID, ConnectionID: req.ConnectionID})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) AddPoints(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	var req models.AddPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	// Amount is not range-checked; this is a trusted single-user context.
	state := store.Dispatch(AddPoints{Amount: req.Amount})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) UpdateTime(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	var req models.UpdateTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	state := store.Dispatch(UpdateTime{Seconds: req.Seconds})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) UnlockAchievement(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}
	state := store.Dispatch(UnlockAchievement{AchievementID: mux.Vars(r)["achievementID"]})
	writeJSON(w, http.StatusOK, state)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
