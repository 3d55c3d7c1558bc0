package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"neuma/internal/codegen"
	"neuma/internal/model"
	"neuma/internal/repository"
	"neuma/internal/storage"
)

// AttachmentUpload carries an uploaded file before it is stored.
type AttachmentUpload struct {
	Name     string
	MimeType string
	Data     []byte
}

// CatalogService manages the activities scoped to a classroom.
type CatalogService struct {
	activities repository.ActivityRepo
	directory  *DirectoryService
	blobs      storage.BlobStore
}

// NewCatalogService creates a new activity catalog service.
func NewCatalogService(activities repository.ActivityRepo, directory *DirectoryService, blobs storage.BlobStore) *CatalogService {
	return &CatalogService{
		activities: activities,
		directory:  directory,
		blobs:      blobs,
	}
}

// CreateActivity posts an activity to one of the teacher's classrooms. The
// attachment, when present, is size-checked before anything is written.
func (s *CatalogService) CreateActivity(ctx context.Context, classroomID, ownerID, title, description string, style model.LearningStyle, upload *AttachmentUpload) (*model.Activity, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < 3 {
		return nil, ErrInvalidTitle
	}
	if !style.IsValid() {
		return nil, ErrInvalidStyle
	}
	if upload != nil && len(upload.Data) > model.MaxAttachmentBytes {
		return nil, ErrAttachmentTooLarge
	}

	if _, err := s.directory.GetOwned(ctx, ownerID, classroomID); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		ID:          codegen.NewID("act"),
		ClassroomID: classroomID,
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Style:       style,
		CreatedAt:   time.Now(),
	}

	if upload != nil {
		name := path.Base(upload.Name)
		if name == "" || name == "." || name == "/" {
			name = "arquivo"
		}
		key, err := s.blobs.Put(path.Join("attachments", activity.ID, name), bytes.NewReader(upload.Data))
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		activity.Attachment = &model.Attachment{
			Key:      key,
			Name:     name,
			MimeType: upload.MimeType,
			Size:     int64(len(upload.Data)),
		}
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		if activity.Attachment != nil {
			_ = s.blobs.Delete(activity.Attachment.Key)
		}
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return activity, nil
}

// ListActivities returns a classroom's activities, most-recent-first.
func (s *CatalogService) ListActivities(ctx context.Context, classroomID string) ([]*model.Activity, error) {
	return s.activities.ListByClassroom(ctx, classroomID)
}

// DeleteActivity removes an activity and its stored attachment. Removal is
// idempotent: an unknown id is treated as already deleted.
func (s *CatalogService) DeleteActivity(ctx context.Context, classroomID, ownerID, activityID string) error {
	if _, err := s.directory.GetOwned(ctx, ownerID, classroomID); err != nil {
		return err
	}

	activity, err := s.activities.GetByID(ctx, classroomID, activityID)
	if err != nil {
		return fmt.Errorf("failed to get activity: %w", err)
	}
	if activity == nil {
		return nil
	}

	if err := s.activities.Delete(ctx, classroomID, activityID); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if activity.Attachment != nil {
		_ = s.blobs.Delete(activity.Attachment.Key)
	}
	return nil
}

// OpenAttachment streams an activity's attachment from the blob store.
func (s *CatalogService) OpenAttachment(ctx context.Context, classroomID, activityID string) (io.ReadCloser, *model.Attachment, error) {
	activity, err := s.activities.GetByID(ctx, classroomID, activityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get activity: %w", err)
	}
	if activity == nil || activity.Attachment == nil {
		return nil, nil, ErrNoAttachment
	}
	rc, err := s.blobs.Get(activity.Attachment.Key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return rc, activity.Attachment, nil
}

// Search filters activities by a case-insensitive substring of title or
// description and, optionally, by learning style. Both predicates must hold.
// The catalog itself is never mutated; a fresh slice is returned.
func Search(activities []*model.Activity, query string, styleFilter string) []*model.Activity {
	query = strings.ToLower(strings.TrimSpace(query))
	filterByStyle := styleFilter != "" && styleFilter != "all"

	matched := []*model.Activity{}
	for _, a := range activities {
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), query) &&
			!strings.Contains(strings.ToLower(a.Description), query) {
			continue
		}
		if filterByStyle && string(a.Style) != styleFilter {
			continue
		}
		matched = append(matched, a)
	}
	return matched
}
