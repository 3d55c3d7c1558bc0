package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"neuma/internal/assessment"
	"neuma/internal/model"
	"neuma/internal/service"
	"neuma/internal/transport/rest/middleware"
)

// AssessmentHandler handles the learning-style inventory endpoints
type AssessmentHandler struct {
	assessSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessSvc: assessSvc}
}

// Start handles POST /v1/assessment/start
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	status, err := h.assessSvc.Start(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, status)
}

// Current handles GET /v1/assessment/current
func (h *AssessmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	status, err := h.assessSvc.Current(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// AnswerRequest is the request body for answering the current question
type AnswerRequest struct {
	OptionIndex int `json:"optionIndex"`
}

// Answer handles POST /v1/assessment/answer
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := h.assessSvc.Answer(r.Context(), studentID, req.OptionIndex)
	if err != nil {
		if errors.Is(err, assessment.ErrInvalidOption) || errors.Is(err, assessment.ErrCompleted) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// Back handles POST /v1/assessment/back
func (h *AssessmentHandler) Back(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	status, err := h.assessSvc.Back(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, assessment.ErrCompleted) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// ResultResponse pairs the persisted scores with the dominant style profile
type ResultResponse struct {
	Result  *model.AssessmentResult `json:"result"`
	Profile *model.StyleProfile     `json:"profile"`
}

// Result handles GET /v1/assessment/result
func (h *AssessmentHandler) Result(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	result, profile, err := h.assessSvc.Result(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResultResponse{Result: result, Profile: profile})
}
