package model

import "time"

// MaxAttachmentBytes bounds the size of an activity attachment (10 MiB).
const MaxAttachmentBytes = 10 << 20

// Attachment references a stored file blob. The bytes themselves live in the
// blob store; only the reference is carried on the activity.
type Attachment struct {
	Key      string `json:"key" bson:"key"`
	Name     string `json:"name" bson:"name"`
	MimeType string `json:"mimeType" bson:"mimeType"`
	Size     int64  `json:"size" bson:"size"`
}

// Activity is a teacher-authored, learning-style-tagged unit of content
// belonging to exactly one classroom.
type Activity struct {
	ID          string        `json:"id" bson:"_id"`
	ClassroomID string        `json:"classroomId" bson:"classroomId"`
	OwnerID     string        `json:"ownerId" bson:"ownerId"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Style       LearningStyle `json:"style" bson:"style"`
	Attachment  *Attachment   `json:"attachment,omitempty" bson:"attachment,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
}
