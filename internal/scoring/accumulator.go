// Package scoring reduces an ordered trace of VARK answers to a score vector
// and a single dominant learning style.
package scoring

import (
	"errors"
	"fmt"

	"neuma/internal/model"
)

var (
	// ErrEmptyTrace is returned when a final score is requested for a trace
	// with no answers.
	ErrEmptyTrace = errors.New("answer trace is empty")
)

// Tally counts one increment per answer. Partial traces may be tallied for
// preview purposes. Fails on any element outside the closed style set.
func Tally(trace []model.LearningStyle) (model.ScoreVector, error) {
	var v model.ScoreVector
	for i, s := range trace {
		if !s.IsValid() {
			return model.ScoreVector{}, fmt.Errorf("invalid trace: unknown style %q at position %d", s, i)
		}
		v.Incr(s)
	}
	return v, nil
}

// Dominant resolves the style with the maximum tally. Ties break by the fixed
// priority order visual > auditory > reading > kinesthetic: the highest-count
// style encountered first in that order wins.
func Dominant(v model.ScoreVector) model.LearningStyle {
	dominant := model.StylePriority[0]
	max := v.Count(dominant)
	for _, s := range model.StylePriority[1:] {
		if v.Count(s) > max {
			dominant = s
			max = v.Count(s)
		}
	}
	return dominant
}

// Score produces the final score vector and dominant style for a completed
// trace. Pure; no side effects.
func Score(trace []model.LearningStyle) (model.ScoreVector, model.LearningStyle, error) {
	if len(trace) == 0 {
		return model.ScoreVector{}, "", ErrEmptyTrace
	}
	v, err := Tally(trace)
	if err != nil {
		return model.ScoreVector{}, "", err
	}
	return v, Dominant(v), nil
}
