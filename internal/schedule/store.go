package schedule

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
)

// EntryFilter is a conjunction of equality predicates over schedule entries.
// Nil/empty fields do not constrain the match.
type EntryFilter struct {
	ID        *primitive.ObjectID
	TeacherID *primitive.ObjectID
	Branch    *string
	Semester  *int
	Day       string
}

// Matches evaluates the filter in memory.
func (f EntryFilter) Matches(e models.ScheduleEntry) bool {
	if f.ID != nil && e.ID != *f.ID {
		return false
	}
	if f.TeacherID != nil && e.TeacherID != *f.TeacherID {
		return false
	}
	if f.Branch != nil && (e.Branch == nil || *e.Branch != *f.Branch) {
		return false
	}
	if f.Semester != nil && (e.Semester == nil || *e.Semester != *f.Semester) {
		return false
	}
	if f.Day != "" && e.Day != f.Day {
		return false
	}
	return true
}

// EntryStore is the persistent schedule entry collection.
type EntryStore interface {
	Find(ctx context.Context, f EntryFilter) ([]models.ScheduleEntry, error)
	InsertOne(ctx context.Context, e *models.ScheduleEntry) error
	InsertMany(ctx context.Context, es []models.ScheduleEntry) (int, error)
	DeleteOne(ctx context.Context, f EntryFilter) (int64, error)
	DeleteMany(ctx context.Context, f EntryFilter) (int64, error)
	Count(ctx context.Context, f EntryFilter) (int64, error)
	// ReplaceOwned deletes every entry of teacherID and inserts es.
	// Implementations state whether the two steps are atomic.
	ReplaceOwned(ctx context.Context, teacherID primitive.ObjectID, es []models.ScheduleEntry) (int, error)
}

// ProfileStore looks up role profiles by user id. A nil profile with a nil
// error means no profile is linked to that user.
type ProfileStore interface {
	TeacherByUser(ctx context.Context, userID primitive.ObjectID) (*models.Teacher, error)
	StudentByUser(ctx context.Context, userID primitive.ObjectID) (*models.Student, error)
}

// SubjectCatalog resolves subject ids.
type SubjectCatalog interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	// Names returns the display name of every id that exists. Missing ids are absent from the map.
	Names(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

// LegacySource walks teacher documents in the old nested timetable shape.
type LegacySource interface {
	EachTeacher(ctx context.Context, fn func(models.LegacyTeacher) error) error
}
