package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrProfileNotFound means the caller authenticated but has no teacher/student profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrRoleNotAuthorized means the caller's role cannot perform the operation.
	ErrRoleNotAuthorized = errors.New("role not authorized")
	// ErrInvalidIdentifier means a caller-supplied id is malformed.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrInvalidSubjectReference means a subject id is malformed or does not exist.
	ErrInvalidSubjectReference = errors.New("invalid subject reference")
	// ErrNotFoundOrForbidden is returned by delete when the entry is missing or owned by someone else.
	ErrNotFoundOrForbidden = errors.New("schedule entry not found or not owned by caller")
	// ErrInvalidEntry means the entry fields themselves are unusable (day, slot).
	ErrInvalidEntry = errors.New("invalid schedule entry")
)

// SubjectReferenceError names the subject id that failed validation.
type SubjectReferenceError struct {
	SubjectID string
}

func (e *SubjectReferenceError) Error() string {
	return fmt.Sprintf("invalid subject reference %q", e.SubjectID)
}

func (e *SubjectReferenceError) Is(target error) bool {
	return target == ErrInvalidSubjectReference
}

// Reasons a delete-by-id removed nothing. Kept for logs only.
const (
	DeleteReasonMissing  = "missing"
	DeleteReasonNotOwner = "not_owner"
	DeleteReasonUnknown  = "unknown"
)

// DeleteRefusedError collapses "does not exist" and "not yours" into one
// externally visible category. Reason is only meant for server logs.
type DeleteRefusedError struct {
	EntryID string
	Reason  string
}

func (e *DeleteRefusedError) Error() string {
	return ErrNotFoundOrForbidden.Error()
}

func (e *DeleteRefusedError) Is(target error) bool {
	return target == ErrNotFoundOrForbidden
}
