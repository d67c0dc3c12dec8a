package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ocean-explorer/backend/internal/gamification"
	"github.com/ocean-explorer/backend/internal/models"
	"github.com/ocean-explorer/backend/internal/progress"
)

// Resolver returns the progress and gamification stores for the request's
// browser session. Quiz completion writes into both.
type Resolver func(r *http.Request) (*progress.Store, *gamification.Store, bool)

type Handler struct {
	service *Service
	resolve Resolver
}

func NewHandler(service *Service, resolve Resolver) *Handler {
	return &Handler{service: service, resolve: resolve}
}

// ── Content ─────────────────────────────────────────────

func (h *Handler) ListChapters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListChapters())
}

func (h *Handler) GetChapter(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.ChapterQuiz(mux.Vars(r)["chapterID"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Chapter not found"})
		return
	}

	public := models.ChapterQuizPublic{
		ChapterID:     quiz.ChapterID,
		Title:         quiz.Title,
		Description:   quiz.Description,
		QuestionCount: len(quiz.Questions),
		Questions:     make([]models.QuestionPublic, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		public.Questions = append(public.Questions, models.PublicQuestion(q))
	}
	writeJSON(w, http.StatusOK, public)
}

// ── Sessions ────────────────────────────────────────────

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	prog, gam, ok := h.resolve(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session required"})
		return
	}

	view, err := h.service.Start(mux.Vars(r)["chapterID"], prog, gam)
	if err != nil {
		if errors.Is(err, ErrChapterNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Chapter not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(mux.Vars(r)["sessionID"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz session not found"})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}

	result, err := h.service.Answer(mux.Vars(r)["sessionID"], req.QuestionID, req.Answer)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Timeout(w http.ResponseWriter, r *http.Request) {
	var req models.TimeoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.service.Timeout(mux.Vars(r)["sessionID"], req.QuestionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Advance(mux.Vars(r)["sessionID"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ── Generation ──────────────────────────────────────────

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Count <= 0 || req.Count > 10 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "count must be between 1 and 10"})
		return
	}

	questions, err := h.service.Generate(r.Context(), mux.Vars(r)["chapterID"], req.Count)
	if err != nil {
		if errors.Is(err, ErrChapterNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Chapter not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, questions)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz session not found"})
	case errors.Is(err, ErrSessionCompleted), errors.Is(err, ErrWrongQuestion),
		errors.Is(err, ErrAlreadyRevealed), errors.Is(err, ErrNotRevealed):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
