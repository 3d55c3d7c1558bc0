package service

import (
	"context"
	"errors"
	"testing"

	"neuma/internal/assessment"
	"neuma/internal/model"
)

func newTestAssessment(t *testing.T) (*AssessmentService, *DirectoryService, *fakeStyleStats, *fakeResultRepo) {
	t.Helper()
	dir, _, memberships, _ := newTestDirectory()
	results := newFakeResultRepo()
	stats := newFakeStyleStats()
	svc := NewAssessmentService(newFakeSessionStore(), results, memberships, stats)
	return svc, dir, stats, results
}

func TestAnswerWithoutSession(t *testing.T) {
	svc, _, _, _ := newTestAssessment(t)
	ctx := context.Background()

	if _, err := svc.Answer(ctx, "std_a", 0); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Answer without session = %v, want ErrNoSession", err)
	}
	if _, err := svc.Current(ctx, "std_a"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Current without session = %v, want ErrNoSession", err)
	}
	if _, err := svc.Back(ctx, "std_a"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Back without session = %v, want ErrNoSession", err)
	}
}

func TestAssessmentFullFlow(t *testing.T) {
	svc, dir, stats, _ := newTestAssessment(t)
	ctx := context.Background()

	classroom, err := dir.CreateClassroom(ctx, "tch_a", "Turma A", "")
	if err != nil {
		t.Fatalf("create classroom: %v", err)
	}
	if _, err := dir.JoinClassroom(ctx, "std_a", classroom.Code); err != nil {
		t.Fatalf("join classroom: %v", err)
	}

	status, err := svc.Start(ctx, "std_a")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if status.State != assessment.StateInProgress || status.Index != 0 || status.Question == nil {
		t.Fatalf("unexpected initial status: %+v", status)
	}

	done, err := svc.HasCompleted(ctx, "std_a")
	if err != nil || done {
		t.Fatalf("HasCompleted before finishing = (%v, %v), want (false, nil)", done, err)
	}

	// Options are ordered visual, auditory, reading, kinesthetic on every
	// question, so these picks tally to {4, 2, 3, 1}.
	picks := []int{0, 0, 0, 1, 1, 2, 2, 2, 3, 0}
	for i, pick := range picks {
		status, err = svc.Answer(ctx, "std_a", pick)
		if err != nil {
			t.Fatalf("Answer #%d: %v", i, err)
		}
	}

	if status.State != assessment.StateCompleted {
		t.Fatalf("state after last answer = %q, want completed", status.State)
	}
	if status.Question != nil {
		t.Fatal("completed status still carries a question")
	}
	if status.Result == nil || status.Profile == nil {
		t.Fatalf("completed status missing result or profile: %+v", status)
	}
	want := model.ScoreVector{Visual: 4, Auditory: 2, Reading: 3, Kinesthetic: 1}
	if status.Result.Scores != want {
		t.Fatalf("scores = %+v, want %+v", status.Result.Scores, want)
	}
	if status.Result.DominantStyle != model.StyleVisual {
		t.Fatalf("dominant = %q, want visual", status.Result.DominantStyle)
	}

	// The in-progress session is gone once the result is persisted.
	if _, err := svc.Current(ctx, "std_a"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Current after completion = %v, want ErrNoSession", err)
	}

	done, err = svc.HasCompleted(ctx, "std_a")
	if err != nil || !done {
		t.Fatalf("HasCompleted after finishing = (%v, %v), want (true, nil)", done, err)
	}

	result, profile, err := svc.Result(ctx, "std_a")
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if result.DominantStyle != model.StyleVisual || profile.Style != model.StyleVisual {
		t.Fatalf("persisted result = %q / profile %q, want visual", result.DominantStyle, profile.Style)
	}

	// Completion bumps the dominant-style tally of the joined classroom.
	snapshot, err := stats.Snapshot(ctx, classroom.ID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.Visual != 1 || snapshot.Total() != 1 {
		t.Fatalf("classroom style tally = %+v, want one visual", snapshot)
	}
}

func TestBackAndRetake(t *testing.T) {
	svc, _, _, _ := newTestAssessment(t)
	ctx := context.Background()

	if _, err := svc.Start(ctx, "std_b"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Answer(ctx, "std_b", 0); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	status, err := svc.Back(ctx, "std_b")
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if status.Index != 0 {
		t.Fatalf("index after back = %d, want 0", status.Index)
	}

	// Stepping back re-asks the question; a different pick must stick.
	for i := 0; i < assessment.QuestionCount(); i++ {
		if status, err = svc.Answer(ctx, "std_b", 1); err != nil {
			t.Fatalf("Answer #%d: %v", i, err)
		}
	}
	if status.Result == nil || status.Result.DominantStyle != model.StyleAuditory {
		t.Fatalf("retaken result = %+v, want auditory dominant", status.Result)
	}

	// Starting over replaces the finished attempt with a fresh session.
	status, err = svc.Start(ctx, "std_b")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if status.State != assessment.StateInProgress || status.Index != 0 {
		t.Fatalf("restarted status = %+v", status)
	}
}

func TestResultWithoutCompletion(t *testing.T) {
	svc, _, _, _ := newTestAssessment(t)

	if _, _, err := svc.Result(context.Background(), "std_c"); !errors.Is(err, ErrNoResult) {
		t.Fatalf("Result with no record = %v, want ErrNoResult", err)
	}
}
