// Package server exposes the study flows as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/quizbank/quizbank/internal/quizbank"
	"github.com/quizbank/quizbank/internal/review"
)

// userIDHeader carries the authenticated user id, injected by the auth proxy
// in front of this service.
const userIDHeader = "X-User-ID"

// StudyService is the service surface the handlers depend on.
//
//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_service.go -package=mock_server StudyService
type StudyService interface {
	BulkRecord(ctx context.Context, userID int64, items []review.BulkItem) []review.BulkItemResult
	NewQuestions(ctx context.Context, userID, courseID int64, limit int) ([]quizbank.Question, error)
	DueQuestions(ctx context.Context, userID, courseID int64, limit int) ([]quizbank.Question, error)
	Progress(ctx context.Context, userID, courseID int64) (review.CourseProgress, error)
	Statistics(ctx context.Context, userID int64) (review.UserStatistics, error)
}

// Handler serves the /api/learn endpoints.
type Handler struct {
	service         StudyService
	logger          *slog.Logger
	defaultNewLimit int
	defaultDueLimit int
}

// NewHandler creates a new Handler. The default limits apply when a queue
// request has no limit parameter.
func NewHandler(service StudyService, logger *slog.Logger, defaultNewLimit, defaultDueLimit int) *Handler {
	return &Handler{
		service:         service,
		logger:          logger,
		defaultNewLimit: defaultNewLimit,
		defaultDueLimit: defaultDueLimit,
	}
}

// Register attaches the handler's routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/learn/records/bulk", h.handleBulkRecord)
	mux.HandleFunc("GET /api/learn/courses/{courseID}/progress", h.handleProgress)
	mux.HandleFunc("GET /api/learn/courses/{courseID}/new", h.handleNewQuestions)
	mux.HandleFunc("GET /api/learn/courses/{courseID}/due", h.handleDueQuestions)
	mux.HandleFunc("GET /api/learn/statistics", h.handleStatistics)
}

type bulkRequest struct {
	Updates []review.BulkItem `json:"updates"`
}

type bulkItemResponse struct {
	QuestionID int64  `json:"question_id"`
	Created    bool   `json:"created,omitempty"`
	Error      string `json:"error,omitempty"`
}

type bulkResponse struct {
	Results []bulkItemResponse `json:"results"`
}

func (h *Handler) handleBulkRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req bulkRequest
	// A type error anywhere in updates fails the whole list; per-item errors
	// are reserved for items that decoded but could not be recorded.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request body: %w", err))
		return
	}
	if req.Updates == nil {
		h.writeError(w, http.StatusBadRequest, errors.New("updates list is required"))
		return
	}

	results := h.service.BulkRecord(r.Context(), userID, req.Updates)

	resp := bulkResponse{Results: make([]bulkItemResponse, 0, len(results))}
	for _, result := range results {
		item := bulkItemResponse{QuestionID: result.QuestionID, Created: result.Created}
		if result.Err != nil {
			item.Error = result.Err.Error()
			item.Created = false
		}
		resp.Results = append(resp.Results, item)
	}
	// Per-item failures are reported inside the body; the request itself
	// succeeded as long as the updates list parsed.
	h.writeJSON(w, http.StatusOK, resp)
}

type progressResponse struct {
	CourseID       int64          `json:"course_id"`
	CourseName     string         `json:"course_name"`
	LearningStatus learningStatus `json:"learning_status"`
}

type learningStatus struct {
	NotLearned int `json:"not_learned"`
	Reviewing  int `json:"reviewing"`
	Mastered   int `json:"mastered"`
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	courseID, err := strconv.ParseInt(r.PathValue("courseID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid course id: %w", err))
		return
	}

	progress, err := h.service.Progress(r.Context(), userID, courseID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, progressResponse{
		CourseID:   progress.CourseID,
		CourseName: progress.CourseName,
		LearningStatus: learningStatus{
			NotLearned: progress.NotLearned,
			Reviewing:  progress.Reviewing,
			Mastered:   progress.Mastered,
		},
	})
}

type questionsResponse struct {
	Questions []quizbank.Question `json:"questions"`
}

func (h *Handler) handleNewQuestions(w http.ResponseWriter, r *http.Request) {
	h.handleQuestionQueue(w, r, h.defaultNewLimit, h.service.NewQuestions)
}

func (h *Handler) handleDueQuestions(w http.ResponseWriter, r *http.Request) {
	h.handleQuestionQueue(w, r, h.defaultDueLimit, h.service.DueQuestions)
}

func (h *Handler) handleQuestionQueue(
	w http.ResponseWriter,
	r *http.Request,
	defaultLimit int,
	query func(ctx context.Context, userID, courseID int64, limit int) ([]quizbank.Question, error),
) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	courseID, err := strconv.ParseInt(r.PathValue("courseID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid course id: %w", err))
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
	}

	questions, err := query(r.Context(), userID, courseID, limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if questions == nil {
		questions = []quizbank.Question{}
	}
	h.writeJSON(w, http.StatusOK, questionsResponse{Questions: questions})
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// userID extracts the authenticated user id from the request. Writes a 401
// and returns false when the header is missing or malformed.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		h.writeError(w, http.StatusUnauthorized, fmt.Errorf("%s header is required", userIDHeader))
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID < 1 {
		h.writeError(w, http.StatusUnauthorized, fmt.Errorf("invalid %s header %q", userIDHeader, raw))
		return 0, false
	}
	return userID, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quizbank.ErrCourseNotFound),
		errors.Is(err, quizbank.ErrQuestionNotFound),
		errors.Is(err, review.ErrRecordNotFound):
		h.writeError(w, http.StatusNotFound, err)
	default:
		h.logger.Error("request failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}
