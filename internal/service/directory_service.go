package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"neuma/internal/cache"
	"neuma/internal/codegen"
	"neuma/internal/model"
	"neuma/internal/repository"
	"neuma/internal/storage"
)

const maxClassroomNameLen = 100

// codeAttempts bounds the regenerate-and-retry loop when a generated code
// collides with an existing classroom.
const codeAttempts = 10

// DirectoryService owns the classroom directory: creation, enumeration,
// code resolution and student memberships.
type DirectoryService struct {
	classrooms  repository.ClassroomRepo
	memberships repository.MembershipRepo
	activities  repository.ActivityRepo
	users       repository.UserRepo
	dirCache    cache.DirectoryCache
	styleStats  cache.StyleStatsCache
	blobs       storage.BlobStore
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(
	classrooms repository.ClassroomRepo,
	memberships repository.MembershipRepo,
	activities repository.ActivityRepo,
	users repository.UserRepo,
	dirCache cache.DirectoryCache,
	styleStats cache.StyleStatsCache,
	blobs storage.BlobStore,
) *DirectoryService {
	return &DirectoryService{
		classrooms:  classrooms,
		memberships: memberships,
		activities:  activities,
		users:       users,
		dirCache:    dirCache,
		styleStats:  styleStats,
		blobs:       blobs,
	}
}

// CreateClassroom creates a classroom for a teacher. When code is empty a
// fresh one is generated, retrying on the rare collision; a supplied code is
// normalized and validated, and a collision fails with ErrDuplicateCode so
// the caller may pick another.
func (s *DirectoryService) CreateClassroom(ctx context.Context, ownerID, name, code string) (*model.Classroom, error) {
	name = strings.TrimSpace(name)
	// length bounds are in characters, not bytes
	if name == "" || utf8.RuneCountInString(name) > maxClassroomNameLen {
		return nil, ErrInvalidName
	}

	classroom := &model.Classroom{
		ID:        codegen.NewID("cls"),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now(),
	}

	if code != "" {
		code = codegen.Normalize(code)
		if err := codegen.Validate(code); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
		}
		classroom.Code = code
		if err := s.classrooms.Create(ctx, classroom); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, ErrDuplicateCode
			}
			return nil, fmt.Errorf("failed to create classroom: %w", err)
		}
	} else {
		created := false
		for attempt := 0; attempt < codeAttempts; attempt++ {
			classroom.Code = codegen.NewCode()
			err := s.classrooms.Create(ctx, classroom)
			if err == nil {
				created = true
				break
			}
			if !errors.Is(err, repository.ErrDuplicate) {
				return nil, fmt.Errorf("failed to create classroom: %w", err)
			}
		}
		if !created {
			return nil, ErrDuplicateCode
		}
	}

	if err := s.dirCache.Set(ctx, classroom); err != nil {
		return nil, fmt.Errorf("failed to cache classroom: %w", err)
	}
	return classroom, nil
}

// ListClassrooms returns a teacher's classrooms, most-recently-created first.
func (s *DirectoryService) ListClassrooms(ctx context.Context, ownerID string) ([]*model.Classroom, error) {
	return s.classrooms.ListByOwner(ctx, ownerID)
}

// ResolveByCode normalizes a user-entered code and looks it up across the
// entire directory, regardless of which teacher owns the classroom.
func (s *DirectoryService) ResolveByCode(ctx context.Context, code string) (*model.Classroom, error) {
	code = codegen.Normalize(code)
	if err := codegen.Validate(code); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}

	if classroom, err := s.dirCache.GetByCode(ctx, code); err == nil && classroom != nil {
		return classroom, nil
	}

	classroom, err := s.classrooms.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve code: %w", err)
	}
	if classroom == nil {
		return nil, ErrClassroomNotFound
	}
	// repopulate the cache; lookup already succeeded, so a cache failure is
	// not worth failing the request over
	_ = s.dirCache.Set(ctx, classroom)
	return classroom, nil
}

// JoinClassroom enrolls a student via join code. Joining the same classroom
// twice fails with ErrAlreadyMember and leaves the membership untouched.
func (s *DirectoryService) JoinClassroom(ctx context.Context, studentID, code string) (*model.Classroom, error) {
	classroom, err := s.ResolveByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	membership := &model.Membership{
		StudentID:   studentID,
		ClassroomID: classroom.ID,
		JoinedAt:    time.Now(),
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to record membership: %w", err)
	}
	return classroom, nil
}

// ListJoined returns the classrooms a student belongs to, in join order.
func (s *DirectoryService) ListJoined(ctx context.Context, studentID string) ([]*model.Classroom, error) {
	memberships, err := s.memberships.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	classrooms := make([]*model.Classroom, 0, len(memberships))
	for _, m := range memberships {
		classroom, err := s.classrooms.GetByID(ctx, m.ClassroomID)
		if err != nil {
			return nil, err
		}
		if classroom == nil {
			continue // classroom deleted since the student joined
		}
		classrooms = append(classrooms, classroom)
	}
	return classrooms, nil
}

// IsMember reports whether a student belongs to a classroom.
func (s *DirectoryService) IsMember(ctx context.Context, studentID, classroomID string) (bool, error) {
	return s.memberships.Exists(ctx, studentID, classroomID)
}

// GetOwned fetches a classroom and verifies the caller owns it.
func (s *DirectoryService) GetOwned(ctx context.Context, ownerID, classroomID string) (*model.Classroom, error) {
	classroom, err := s.classrooms.GetByID(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get classroom: %w", err)
	}
	if classroom == nil {
		return nil, ErrClassroomNotFound
	}
	if classroom.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return classroom, nil
}

// DeleteClassroom removes a classroom with its activities, memberships and
// cached entries. Only the owning teacher may delete it.
func (s *DirectoryService) DeleteClassroom(ctx context.Context, ownerID, classroomID string) error {
	classroom, err := s.GetOwned(ctx, ownerID, classroomID)
	if err != nil {
		return err
	}

	activities, err := s.activities.ListByClassroom(ctx, classroomID)
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}
	for _, a := range activities {
		if a.Attachment != nil {
			_ = s.blobs.Delete(a.Attachment.Key)
		}
	}
	if err := s.activities.DeleteByClassroom(ctx, classroomID); err != nil {
		return fmt.Errorf("failed to delete activities: %w", err)
	}
	if err := s.memberships.DeleteByClassroom(ctx, classroomID); err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}
	if err := s.classrooms.Delete(ctx, classroomID); err != nil {
		return fmt.Errorf("failed to delete classroom: %w", err)
	}
	_ = s.dirCache.Delete(ctx, classroom.Code)
	_ = s.styleStats.Delete(ctx, classroomID)
	return nil
}

// ListMembers returns the student roster of one of the teacher's
// classrooms, in join order. Entries keep their name blank if the account
// has since been removed.
func (s *DirectoryService) ListMembers(ctx context.Context, ownerID, classroomID string) ([]*model.RosterEntry, error) {
	if _, err := s.GetOwned(ctx, ownerID, classroomID); err != nil {
		return nil, err
	}

	memberships, err := s.memberships.ListByClassroom(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	roster := make([]*model.RosterEntry, 0, len(memberships))
	for _, m := range memberships {
		entry := &model.RosterEntry{StudentID: m.StudentID, JoinedAt: m.JoinedAt}
		user, err := s.users.GetByID(ctx, m.StudentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load member: %w", err)
		}
		if user != nil {
			entry.FullName = user.FullName
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

// StyleBreakdown returns the tally of members' dominant styles for one of
// the teacher's classrooms.
func (s *DirectoryService) StyleBreakdown(ctx context.Context, ownerID, classroomID string) (*model.StyleBreakdown, error) {
	if _, err := s.GetOwned(ctx, ownerID, classroomID); err != nil {
		return nil, err
	}
	counts, err := s.styleStats.Snapshot(ctx, classroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to read style stats: %w", err)
	}
	return &model.StyleBreakdown{ClassroomID: classroomID, Counts: counts}, nil
}
