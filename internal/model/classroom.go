package model

import "time"

// Classroom is a teacher-owned grouping that scopes activities and student
// memberships. The join code is unique across the whole directory, not just
// within one teacher's classrooms.
type Classroom struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"ownerId" bson:"ownerId"`
	Name      string    `json:"name" bson:"name"`
	Code      string    `json:"code" bson:"code"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Membership links a student to a classroom. A given (student, classroom)
// pair exists at most once.
type Membership struct {
	StudentID   string    `json:"studentId" bson:"studentId"`
	ClassroomID string    `json:"classroomId" bson:"classroomId"`
	JoinedAt    time.Time `json:"joinedAt" bson:"joinedAt"`
}

// RosterEntry is one student on a classroom's member roster. FullName is
// blank when the account no longer exists.
type RosterEntry struct {
	StudentID string    `json:"studentId"`
	FullName  string    `json:"fullName"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// StyleBreakdown is the per-classroom tally of members' dominant styles.
type StyleBreakdown struct {
	ClassroomID string      `json:"classroomId"`
	Counts      ScoreVector `json:"counts"`
}
