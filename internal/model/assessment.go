package model

import "time"

// ScoreVector tallies answers per learning style. The sum of the four counts
// always equals the number of answers that produced it.
type ScoreVector struct {
	Visual      int `json:"visual" bson:"visual"`
	Auditory    int `json:"auditory" bson:"auditory"`
	Reading     int `json:"reading" bson:"reading"`
	Kinesthetic int `json:"kinesthetic" bson:"kinesthetic"`
}

// Count returns the tally for one style.
func (v ScoreVector) Count(s LearningStyle) int {
	switch s {
	case StyleVisual:
		return v.Visual
	case StyleAuditory:
		return v.Auditory
	case StyleReading:
		return v.Reading
	case StyleKinesthetic:
		return v.Kinesthetic
	}
	return 0
}

// Incr bumps the tally for one style.
func (v *ScoreVector) Incr(s LearningStyle) {
	switch s {
	case StyleVisual:
		v.Visual++
	case StyleAuditory:
		v.Auditory++
	case StyleReading:
		v.Reading++
	case StyleKinesthetic:
		v.Kinesthetic++
	}
}

// Total returns the sum of all four tallies.
func (v ScoreVector) Total() int {
	return v.Visual + v.Auditory + v.Reading + v.Kinesthetic
}

// AssessmentResult is the persisted outcome of one completed inventory.
type AssessmentResult struct {
	ID            string        `json:"id" bson:"_id"`
	SubjectID     string        `json:"subjectId" bson:"subjectId"`
	Scores        ScoreVector   `json:"scores" bson:"scores"`
	DominantStyle LearningStyle `json:"dominantStyle" bson:"dominantStyle"`
	CompletedAt   time.Time     `json:"completedAt" bson:"completedAt"`
}
