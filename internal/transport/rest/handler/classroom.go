package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"neuma/internal/service"
	"neuma/internal/transport/rest/middleware"
)

// ClassroomHandler handles classroom directory endpoints
type ClassroomHandler struct {
	dirSvc *service.DirectoryService
}

// NewClassroomHandler creates a new classroom handler
func NewClassroomHandler(dirSvc *service.DirectoryService) *ClassroomHandler {
	return &ClassroomHandler{dirSvc: dirSvc}
}

// CreateClassroomRequest is the request body for creating a classroom. Code
// is optional: when empty a fresh one is generated.
type CreateClassroomRequest struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Create handles POST /v1/classrooms
func (h *ClassroomHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	var req CreateClassroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	classroom, err := h.dirSvc.CreateClassroom(r.Context(), ownerID, req.Name, req.Code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, classroom)
}

// List handles GET /v1/classrooms
func (h *ClassroomHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	classrooms, err := h.dirSvc.ListClassrooms(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, classrooms)
}

// Delete handles DELETE /v1/classrooms/{classroomId}
func (h *ClassroomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	classroomID := mux.Vars(r)["classroomId"]

	if err := h.dirSvc.DeleteClassroom(r.Context(), ownerID, classroomID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Members handles GET /v1/classrooms/{classroomId}/members
func (h *ClassroomHandler) Members(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	classroomID := mux.Vars(r)["classroomId"]

	roster, err := h.dirSvc.ListMembers(r.Context(), ownerID, classroomID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, roster)
}

// StyleBreakdown handles GET /v1/classrooms/{classroomId}/styles
func (h *ClassroomHandler) StyleBreakdown(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	classroomID := mux.Vars(r)["classroomId"]

	breakdown, err := h.dirSvc.StyleBreakdown(r.Context(), ownerID, classroomID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}

// JoinRequest is the request body for joining a classroom by code
type JoinRequest struct {
	Code string `json:"code"`
}

// Join handles POST /v1/classrooms/join
func (h *ClassroomHandler) Join(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	classroom, err := h.dirSvc.JoinClassroom(r.Context(), studentID, req.Code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, classroom)
}

// ListJoined handles GET /v1/me/classrooms
func (h *ClassroomHandler) ListJoined(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	classrooms, err := h.dirSvc.ListJoined(r.Context(), studentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, classrooms)
}
