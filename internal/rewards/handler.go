package rewards

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ocean-explorer/backend/internal/models"
)

// Resolver returns the rewards store for the request's browser session.
type Resolver func(r *http.Request) (*Store, bool)

// SnapshotFunc assembles the read-only user snapshot used for eligibility.
// The wiring in main builds it from the progress and gamification stores so
// this package never reaches into either.
type SnapshotFunc func(r *http.Request) (models.UserSnapshot, bool)

type Handler struct {
	resolve  Resolver
	snapshot SnapshotFunc
}

func NewHandler(resolve Resolver, snapshot SnapshotFunc) *Handler {
	return &Handler{resolve: resolve, snapshot: snapshot}
}

func (h *Handler) GetRewards(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}
	snapshot, ok := h.snapshot(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	writeJSON(w, http.StatusOK, models.RewardsResponse{
		Rewards: store.Views(snapshot),
		State:   store.State(),
	})
}

func (h *Handler) UnlockReward(w http.ResponseWriter, r *http.Request) {
	h.dispatchByID(w, r, func(id string) Action { return UnlockReward{RewardID: id} })
}

func (h *Handler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	h.dispatchByID(w, r, func(id string) Action { return ClaimReward{RewardID: id} })
}

func (h *Handler) ActivateReward(w http.ResponseWriter, r *http.Request) {
	h.dispatchByID(w, r, func(id string) Action { return ActivateReward{RewardID: id} })
}

func (h *Handler) DeactivateReward(w http.ResponseWriter, r *http.Request) {
	h.dispatchByID(w, r, func(id string) Action { return DeactivateReward{RewardID: id} })
}

func (h *Handler) dispatchByID(w http.ResponseWriter, r *http.Request, build func(id string) Action) {
	store, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	rewardID := mux.Vars(r)["rewardID"]
	if _, found := store.Find(rewardID); !found {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Reward not found"})
		return
	}

	state := store.Dispatch(build(rewardID))
	writeJSON(w, http.StatusOK, state)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
