package service

import (
	"context"
	"fmt"
	"time"

	"neuma/internal/assessment"
	"neuma/internal/cache"
	"neuma/internal/codegen"
	"neuma/internal/model"
	"neuma/internal/repository"
)

// AssessmentStatus is the session snapshot returned to the student after
// each navigation step.
type AssessmentStatus struct {
	State    assessment.State        `json:"state"`
	Index    int                     `json:"index"`
	Total    int                     `json:"total"`
	Question *model.Question         `json:"question,omitempty"`
	Result   *model.AssessmentResult `json:"result,omitempty"`
	Profile  *model.StyleProfile     `json:"profile,omitempty"`
}

// AssessmentService orchestrates assessment sessions: it keeps in-progress
// state in the session store and persists the result on completion.
type AssessmentService struct {
	sessions    cache.SessionStore
	results     repository.ResultRepo
	memberships repository.MembershipRepo
	styleStats  cache.StyleStatsCache
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(
	sessions cache.SessionStore,
	results repository.ResultRepo,
	memberships repository.MembershipRepo,
	styleStats cache.StyleStatsCache,
) *AssessmentService {
	return &AssessmentService{
		sessions:    sessions,
		results:     results,
		memberships: memberships,
		styleStats:  styleStats,
	}
}

// Start begins a fresh session for the subject, replacing any session
// already in progress.
func (s *AssessmentService) Start(ctx context.Context, subjectID string) (*AssessmentStatus, error) {
	session := assessment.NewSession(subjectID)
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return s.status(session), nil
}

// Current returns the subject's session snapshot.
func (s *AssessmentService) Current(ctx context.Context, subjectID string) (*AssessmentStatus, error) {
	session, err := s.load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return s.status(session), nil
}

// Answer records the selected option for the current question. Answering the
// last question completes the session: the result is persisted, the style
// tally of every classroom the student belongs to is bumped, and the
// in-progress session is discarded.
func (s *AssessmentService) Answer(ctx context.Context, subjectID string, optionIndex int) (*AssessmentStatus, error) {
	session, err := s.load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if err := session.Answer(optionIndex); err != nil {
		return nil, err
	}

	if !session.Completed() {
		if err := s.sessions.Set(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
		return s.status(session), nil
	}

	result := &model.AssessmentResult{
		ID:            codegen.NewID("res"),
		SubjectID:     subjectID,
		Scores:        session.Scores,
		DominantStyle: session.Dominant,
		CompletedAt:   time.Now(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to persist result: %w", err)
	}
	_ = s.sessions.Delete(ctx, subjectID)

	// Classroom dashboards tally dominant styles; keep them current.
	if memberships, err := s.memberships.ListByStudent(ctx, subjectID); err == nil {
		for _, m := range memberships {
			_ = s.styleStats.Incr(ctx, m.ClassroomID, result.DominantStyle)
		}
	}

	status := s.status(session)
	status.Result = result
	profile := result.DominantStyle.Profile()
	status.Profile = &profile
	return status, nil
}

// Back steps the session to the previous question.
func (s *AssessmentService) Back(ctx context.Context, subjectID string) (*AssessmentStatus, error) {
	session, err := s.load(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if err := session.Back(); err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return s.status(session), nil
}

// Result returns the subject's most recent persisted result with its style
// profile.
func (s *AssessmentService) Result(ctx context.Context, subjectID string) (*model.AssessmentResult, *model.StyleProfile, error) {
	result, err := s.results.LatestBySubject(ctx, subjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load result: %w", err)
	}
	if result == nil {
		return nil, nil, ErrNoResult
	}
	profile := result.DominantStyle.Profile()
	return result, &profile, nil
}

// HasCompleted reports whether the subject has ever finished the inventory.
// Derived from the presence of a result record, never a separate flag.
func (s *AssessmentService) HasCompleted(ctx context.Context, subjectID string) (bool, error) {
	return s.results.HasCompleted(ctx, subjectID)
}

func (s *AssessmentService) load(ctx context.Context, subjectID string) (*assessment.Session, error) {
	session, err := s.sessions.Get(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

func (s *AssessmentService) status(session *assessment.Session) *AssessmentStatus {
	return &AssessmentStatus{
		State:    session.State,
		Index:    session.Index,
		Total:    assessment.QuestionCount(),
		Question: session.Current(),
	}
}
