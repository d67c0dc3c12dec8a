package summary

import (
	"encoding/json"
	"net/http"

	"github.com/ocean-explorer/backend/internal/models"
	"github.com/ocean-explorer/backend/internal/session"
)

// Response is the one-call dashboard view: everything the overview screen
// renders, assembled from the session's three stores.
type Response struct {
	SessionID    string                      `json:"session_id"`
	Progress     models.ProgressState        `json:"progress"`
	Gamification models.GamificationResponse `json:"gamification"`
	Rewards      []models.RewardView         `json:"rewards"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	resp := Response{
		SessionID:    s.ID,
		Progress:     s.Progress.State(),
		Gamification: models.NewGamificationResponse(s.Gamification.State()),
		Rewards:      s.Rewards.Views(s.Snapshot()),
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
