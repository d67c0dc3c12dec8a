package gamification

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ocean-explorer/backend/internal/models"
)

// Resolver returns the gamification store for the request's browser session.
type Resolver func(r *http.Request) (*Store, bool)

type Handler struct {
	resolve Resolver
}

func NewHandler(resolve Resolver) *Handler {
	return &Handler{resolve: resolve}
}

func (h *Handler) GetGamification(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}
	writeJSON(w, http.StatusOK, models.NewGamificationResponse(store.State()))
}

func (h *Handler) AddExperience(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	var req models.AddExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	state := store.Dispatch(AddExperience{Amount: req.Amount})
	writeJSON(w, http.StatusOK, models.NewGamificationResponse(state))
}

func (h *Handler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	// Unknown challenge ids are a silent no-op, mirrored as a 200 with the
	// unchanged state.
	state := store.Dispatch(CompleteChallenge{ChallengeID: mux.Vars(r)["challengeID"]})
	writeJSON(w, http.StatusOK, models.NewGamificationResponse(state))
}

func (h *Handler) SetChallengeProgress(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	var req models.ChallengeProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	state := store.Dispatch(SetChallengeProgress{
		ChallengeID: mux.Vars(r)["challengeID"],
		Progress:    req.Progress,
	})
	writeJSON(w, http.StatusOK, models.NewGamificationResponse(state))
}

func (h *Handler) UnlockAchievement(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}
	state := store.Dispatch(UnlockAchievement{AchievementID: mux.Vars(r)["achievementID"]})
	writeJSON(w, http.StatusOK, models.NewGamificationResponse(state))
}

func (h *Handler) EarnBadge(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}
	state := store.Dispatch(EarnBadge{BadgeID: mux.Vars(r)["badgeID"]})
	writeJSON(w, http.StatusOK, models.NewGamificationResponse(state))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
