package model

// Option is one of the four choices of an inventory question, tagged with
// the learning style it counts toward.
type Option struct {
	Label string        `json:"label"`
	Style LearningStyle `json:"style"`
}

// Question is one item of the fixed VARK inventory. Questions are defined at
// build time; they are never persisted and have no wire format of their own.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}
