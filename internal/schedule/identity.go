package schedule

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the caller's role tag as issued by the auth collaborator.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Caller is the authenticated (user_id, role) pair.
type Caller struct {
	UserID string
	Role   Role
}

// Identity is a caller resolved to its role profile.
type Identity struct {
	Role Role
	// TeacherID is the ownership key. Zero for students.
	TeacherID primitive.ObjectID
	Branch    *string
	Semester  *int
}

// CohortComplete reports whether a student has both branch and semester.
// A student without a complete cohort sees no schedule at all.
func (i Identity) CohortComplete() bool {
	return i.Branch != nil && strings.TrimSpace(*i.Branch) != "" && i.Semester != nil
}

// Resolver maps callers to profiles.
type Resolver struct {
	Profiles ProfileStore
}

func (r Resolver) Resolve(ctx context.Context, c Caller) (Identity, error) {
	switch c.Role {
	case RoleTeacher, RoleStudent:
	default:
		return Identity{}, fmt.Errorf("role %q: %w", c.Role, ErrRoleNotAuthorized)
	}

	userID, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		// no profile can be linked to a malformed user id
		return Identity{}, fmt.Errorf("user %q: %w", c.UserID, ErrProfileNotFound)
	}

	if c.Role == RoleTeacher {
		t, err := r.Profiles.TeacherByUser(ctx, userID)
		if err != nil {
			return Identity{}, fmt.Errorf("lookup teacher profile: %w", err)
		}
		if t == nil {
			return Identity{}, fmt.Errorf("teacher for user %s: %w", c.UserID, ErrProfileNotFound)
		}
		return Identity{Role: RoleTeacher, TeacherID: t.ID, Branch: t.Branch}, nil
	}

	s, err := r.Profiles.StudentByUser(ctx, userID)
	if err != nil {
		return Identity{}, fmt.Errorf("lookup student profile: %w", err)
	}
	if s == nil {
		return Identity{}, fmt.Errorf("student for user %s: %w", c.UserID, ErrProfileNotFound)
	}
	return Identity{Role: RoleStudent, Branch: s.Branch, Semester: s.Semester}, nil
}
