package assessment

import (
	"errors"
	"testing"

	"neuma/internal/model"
)

func TestValidateQuestionSet(t *testing.T) {
	if err := ValidateQuestionSet(); err != nil {
		t.Fatalf("inventory failed validation: %v", err)
	}
	if QuestionCount() != 10 {
		t.Fatalf("QuestionCount = %d, want 10", QuestionCount())
	}
}

func TestBackAtFirstQuestionIsNoop(t *testing.T) {
	s := NewSession("stu_1")
	if err := s.Back(); err != nil {
		t.Fatalf("Back at index 0 returned error: %v", err)
	}
	if s.Index != 0 || len(s.Trace) != 0 {
		t.Fatalf("Back at index 0 mutated session: index=%d trace=%d", s.Index, len(s.Trace))
	}
}

func TestTraceTracksIndex(t *testing.T) {
	s := NewSession("stu_1")
	for i := 0; i < 5; i++ {
		if err := s.Answer(0); err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
		if len(s.Trace) != s.Index {
			t.Fatalf("after answer %d: trace len %d != index %d", i, len(s.Trace), s.Index)
		}
	}
	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.Index != 4 || len(s.Trace) != 4 {
		t.Fatalf("after back: index=%d trace=%d, want 4/4", s.Index, len(s.Trace))
	}
}

func TestAnswerRejectsInvalidOption(t *testing.T) {
	s := NewSession("stu_1")
	if err := s.Answer(4); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("Answer(4) = %v, want ErrInvalidOption", err)
	}
	if err := s.Answer(-1); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("Answer(-1) = %v, want ErrInvalidOption", err)
	}
	if s.Index != 0 {
		t.Fatalf("rejected answer advanced the session to %d", s.Index)
	}
}

func TestCompletionIsTerminal(t *testing.T) {
	s := NewSession("stu_1")
	// Option 0 of every question is visual.
	for i := 0; i < QuestionCount(); i++ {
		if err := s.Answer(0); err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
	}
	if !s.Completed() {
		t.Fatal("session not completed after answering all questions")
	}
	if s.Current() != nil {
		t.Fatal("Current returned a question after completion")
	}
	if s.Scores.Total() != QuestionCount() {
		t.Fatalf("score total = %d, want %d", s.Scores.Total(), QuestionCount())
	}
	if s.Dominant != model.StyleVisual {
		t.Fatalf("dominant = %q, want visual", s.Dominant)
	}

	if err := s.Answer(0); !errors.Is(err, ErrCompleted) {
		t.Fatalf("Answer after completion = %v, want ErrCompleted", err)
	}
	if err := s.Back(); !errors.Is(err, ErrCompleted) {
		t.Fatalf("Back after completion = %v, want ErrCompleted", err)
	}
}

func TestMixedTraceScoring(t *testing.T) {
	s := NewSession("stu_1")
	// Options are ordered visual, auditory, reading, kinesthetic on every
	// question, so picking by index builds a known trace.
	picks := []int{0, 0, 0, 1, 1, 2, 2, 2, 3, 0}
	for i, p := range picks {
		if err := s.Answer(p); err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
	}
	want := model.ScoreVector{Visual: 4, Auditory: 2, Reading: 3, Kinesthetic: 1}
	if s.Scores != want {
		t.Fatalf("scores = %+v, want %+v", s.Scores, want)
	}
	if s.Dominant != model.StyleVisual {
		t.Fatalf("dominant = %q, want visual", s.Dominant)
	}
}
