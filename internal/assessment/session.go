// Package assessment holds the fixed VARK inventory and the state machine
// that walks a student through it.
package assessment

import (
	"errors"

	"neuma/internal/model"
	"neuma/internal/scoring"
)

// State is the lifecycle phase of a session.
type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

var (
	// ErrCompleted is returned by Answer and Back once the session has
	// produced a result. A new session must be started to retake the test.
	ErrCompleted = errors.New("assessment already completed")
	// ErrInvalidOption is returned when the selected option index is outside
	// the current question's options.
	ErrInvalidOption = errors.New("invalid option selection")
)

// Session walks a subject through the inventory one question at a time.
// While in progress the answer trace always has exactly Index elements;
// Back pops the last element, Answer appends one.
//
// The struct is JSON-serializable so in-progress sessions survive across
// requests in the session store.
type Session struct {
	SubjectID string                `json:"subjectId"`
	Index     int                   `json:"index"`
	Trace     []model.LearningStyle `json:"trace"`
	State     State                 `json:"state"`
	Scores    model.ScoreVector     `json:"scores"`
	Dominant  model.LearningStyle   `json:"dominant,omitempty"`
}

// NewSession starts a fresh session positioned at the first question.
func NewSession(subjectID string) *Session {
	return &Session{
		SubjectID: subjectID,
		Index:     0,
		Trace:     []model.LearningStyle{},
		State:     StateInProgress,
	}
}

// Current returns the question the session is waiting on, or nil once the
// session has completed.
func (s *Session) Current() *model.Question {
	if s.State != StateInProgress || s.Index >= len(questions) {
		return nil
	}
	q := questions[s.Index]
	return &q
}

// Answer records the selected option of the current question and advances.
// Answering the last question completes the session and computes the final
// scores.
func (s *Session) Answer(optionIndex int) error {
	if s.State == StateCompleted {
		return ErrCompleted
	}
	q := s.Current()
	if q == nil {
		return ErrCompleted
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrInvalidOption
	}

	s.Trace = append(s.Trace, q.Options[optionIndex].Style)
	s.Index++

	if s.Index < len(questions) {
		return nil
	}

	scores, dominant, err := scoring.Score(s.Trace)
	if err != nil {
		// The trace is built exclusively from the static question set, so
		// scoring can only fail if the inventory itself is malformed.
		return err
	}
	s.Scores = scores
	s.Dominant = dominant
	s.State = StateCompleted
	return nil
}

// Back steps to the previous question, discarding its recorded answer.
// At the first question it is a no-op.
func (s *Session) Back() error {
	if s.State == StateCompleted {
		return ErrCompleted
	}
	if s.Index == 0 {
		return nil
	}
	s.Index--
	s.Trace = s.Trace[:len(s.Trace)-1]
	return nil
}

// Completed reports whether the session has produced a result.
func (s *Session) Completed() bool {
	return s.State == StateCompleted
}
