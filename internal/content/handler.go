package content

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ocean-explorer/backend/internal/models"
)

// Handler serves the read-only comparison and exploration content. It holds
// no state and dispatches nothing; discoveries flow through the progress API.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ListParallels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ParallelSystems())
}

func (h *Handler) GetParallel(w http.ResponseWriter, r *http.Request) {
	system, ok := FindParallelSystem(mux.Vars(r)["systemID"])
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "System not found"})
		return
	}
	writeJSON(w, http.StatusOK, system)
}

func (h *Handler) ListComparisons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ComparisonPoints())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
