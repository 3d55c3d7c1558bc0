package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"neuma/internal/model"
	"neuma/internal/service"
	"neuma/internal/transport/rest/middleware"
)

// Multipart forms are parsed with a little headroom over the attachment
// limit so the size check happens in the service, not the parser.
const maxUploadFormBytes = model.MaxAttachmentBytes + 1<<20

// ActivityHandler handles activity catalog endpoints
type ActivityHandler struct {
	catalogSvc *service.CatalogService
	dirSvc     *service.DirectoryService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(catalogSvc *service.CatalogService, dirSvc *service.DirectoryService) *ActivityHandler {
	return &ActivityHandler{catalogSvc: catalogSvc, dirSvc: dirSvc}
}

// Create handles POST /v1/classrooms/{classroomId}/activities. The body is a
// multipart form with title, description and style fields plus an optional
// file part.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	classroomID := mux.Vars(r)["classroomId"]

	if err := r.ParseMultipartForm(maxUploadFormBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	style, err := model.ParseLearningStyle(r.FormValue("style"))
	if err != nil {
		writeServiceError(w, service.ErrInvalidStyle)
		return
	}

	var upload *service.AttachmentUpload
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadFormBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		upload = &service.AttachmentUpload{
			Name:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Data:     data,
		}
	}

	activity, err := h.catalogSvc.CreateActivity(
		r.Context(),
		classroomID,
		ownerID,
		r.FormValue("title"),
		r.FormValue("description"),
		style,
		upload,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, activity)
}

// List handles GET /v1/classrooms/{classroomId}/activities. Query params q
// and style filter the catalog; both must match when present.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	classroomID := mux.Vars(r)["classroomId"]

	if err := h.ensureAccess(r, classroomID); err != nil {
		writeServiceError(w, err)
		return
	}

	activities, err := h.catalogSvc.ListActivities(r.Context(), classroomID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	query := r.URL.Query()
	activities = service.Search(activities, query.Get("q"), query.Get("style"))

	writeJSON(w, http.StatusOK, activities)
}

// Delete handles DELETE /v1/classrooms/{classroomId}/activities/{activityId}
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())
	vars := mux.Vars(r)

	if err := h.catalogSvc.DeleteActivity(r.Context(), vars["classroomId"], ownerID, vars["activityId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// DownloadAttachment handles GET /v1/classrooms/{classroomId}/activities/{activityId}/attachment
func (h *ActivityHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	classroomID := vars["classroomId"]

	if err := h.ensureAccess(r, classroomID); err != nil {
		writeServiceError(w, err)
		return
	}

	rc, att, err := h.catalogSvc.OpenAttachment(r.Context(), classroomID, vars["activityId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer rc.Close()

	mimeType := att.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", att.Size))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Name))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, rc)
}

// ensureAccess admits the classroom's owner and its joined students.
func (h *ActivityHandler) ensureAccess(r *http.Request, classroomID string) error {
	userID := middleware.GetUserID(r.Context())

	if middleware.GetRole(r.Context()) == model.RoleTeacher {
		_, err := h.dirSvc.GetOwned(r.Context(), userID, classroomID)
		return err
	}

	member, err := h.dirSvc.IsMember(r.Context(), userID, classroomID)
	if err != nil {
		return err
	}
	if !member {
		return service.ErrClassroomNotFound
	}
	return nil
}
