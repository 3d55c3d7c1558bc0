package service

import "errors"

// Failure modes surfaced by the services. Validation and conflict errors are
// returned immediately on the first violated precondition; nothing is
// committed on failure.
var (
	// Validation
	ErrInvalidName  = errors.New("classroom name must be non-empty and at most 100 characters")
	ErrInvalidCode  = errors.New("code must have exactly 6 characters from the allowed alphabet")
	ErrInvalidTitle = errors.New("title must have at least 3 characters")
	ErrInvalidStyle = errors.New("unknown learning style")

	// Conflict
	ErrDuplicateCode = errors.New("code is already in use by another classroom")
	ErrAlreadyMember = errors.New("student already joined this classroom")
	ErrEmailTaken    = errors.New("email is already registered")

	// Not found
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrNoAttachment      = errors.New("activity has no attachment")
	ErrNoSession         = errors.New("no assessment in progress")
	ErrNoResult          = errors.New("no assessment result for this subject")

	// Resource limit
	ErrAttachmentTooLarge = errors.New("attachment exceeds the 10 MiB limit")

	// Authorization
	ErrNotOwner           = errors.New("classroom belongs to another teacher")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
