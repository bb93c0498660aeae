package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
	"github.com/mghazyfawazh/smart-attendance/internal/schedule"
)

func startTimes(classes []models.ClassPeriod) []string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		out = append(out, c.StartTime)
	}
	return out
}

func TestTodayScheduleSortedByStartTime(t *testing.T) {
	f := newFixture("Monday")
	for _, st := range []string{"09:00", "08:00", "10:30"} {
		f.seed(models.ScheduleEntry{Day: "Monday", StartTime: st, EndTime: "11:00", TeacherID: f.teacher.ID})
	}
	f.seed(models.ScheduleEntry{Day: "Tuesday", StartTime: "07:00", EndTime: "08:00", TeacherID: f.teacher.ID})

	out, err := f.svc.TodaySchedule(context.Background(), f.teacherCaller())
	require.NoError(t, err)
	assert.Equal(t, "Monday", out.CurrentDay)
	assert.Equal(t, []string{"08:00", "09:00", "10:30"}, startTimes(out.Classes))
}

func TestTodayScheduleBadStartTimeKeepsQueryOrder(t *testing.T) {
	f := newFixture("Monday")
	for _, st := range []string{"09:00", "bad", "08:00", "10:30"} {
		f.seed(models.ScheduleEntry{Day: "Monday", StartTime: st, EndTime: "11:00", TeacherID: f.teacher.ID})
	}

	out, err := f.svc.TodaySchedule(context.Background(), f.teacherCaller())
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "bad", "08:00", "10:30"}, startTimes(out.Classes))
}

func TestTodayScheduleExcludesEntriesWithoutTimes(t *testing.T) {
	f := newFixture("Monday")
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.teacher.ID})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "10:00", TeacherID: f.teacher.ID})
	f.seed(models.ScheduleEntry{Day: "Monday", EndTime: "12:00", TeacherID: f.teacher.ID})

	today, err := f.svc.TodaySchedule(context.Background(), f.teacherCaller())
	require.NoError(t, err)
	assert.Len(t, today.Classes, 1)

	full, err := f.svc.FullSchedule(context.Background(), f.teacherCaller())
	require.NoError(t, err)
	assert.Len(t, full, 3)
}

func TestTeacherSeesOnlyOwnedEntries(t *testing.T) {
	f := newFixture("Monday")
	mine := f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.teacher.ID})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.other.ID})

	full, err := f.svc.FullSchedule(context.Background(), f.teacherCaller())
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.Equal(t, mine.ID, full[0].ID)
}

func TestStudentSeesOnlyOwnCohort(t *testing.T) {
	f := newFixture("Monday")
	in := f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.teacher.ID, Branch: strPtr("CSE"), Semester: intPtr(4)})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.teacher.ID, Branch: strPtr("CSE"), Semester: intPtr(6)})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.other.ID, Branch: strPtr("ECE"), Semester: intPtr(4)})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.other.ID})

	student := f.addStudent(strPtr("CSE"), intPtr(4))

	full, err := f.svc.FullSchedule(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.Equal(t, in.ID, full[0].ID)

	today, err := f.svc.TodaySchedule(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, today.Classes, 1)
	assert.Equal(t, in.ID, today.Classes[0].ID)
}

func TestStudentWithIncompleteCohortSeesNothing(t *testing.T) {
	f := newFixture("Monday")
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.teacher.ID, Branch: strPtr("CSE"), Semester: intPtr(4)})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.teacher.ID})

	for _, student := range []schedule.Caller{
		f.addStudent(nil, intPtr(4)),
		f.addStudent(strPtr("CSE"), nil),
		f.addStudent(nil, nil),
	} {
		full, err := f.svc.FullSchedule(context.Background(), student)
		require.NoError(t, err)
		assert.Empty(t, full)
		assert.NotNil(t, full)

		today, err := f.svc.TodaySchedule(context.Background(), student)
		require.NoError(t, err)
		assert.Empty(t, today.Classes)
		assert.Equal(t, "Monday", today.CurrentDay)
	}
}

func TestSubjectNamesWithPlaceholder(t *testing.T) {
	f := newFixture("Monday")
	deleted := primitive.NewObjectID()
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "08:00", EndTime: "09:00", TeacherID: f.teacher.ID, SubjectID: &f.math})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "10:00", TeacherID: f.teacher.ID, SubjectID: &deleted})
	f.seed(models.ScheduleEntry{Day: "Monday", StartTime: "10:00", EndTime: "11:00", TeacherID: f.teacher.ID})

	out, err := f.svc.TodaySchedule(context.Background(), f.teacherCaller())
	require.NoError(t, err)
	require.Len(t, out.Classes, 3)
	assert.Equal(t, "Mathematics", out.Classes[0].SubjectName)
	assert.Equal(t, schedule.UnknownSubject, out.Classes[1].SubjectName)
	assert.Equal(t, schedule.UnknownSubject, out.Classes[2].SubjectName)
	assert.Nil(t, out.Classes[0].AttendanceStatus)
}

func TestReadsRejectUnknownRole(t *testing.T) {
	f := newFixture("Monday")
	_, err := f.svc.FullSchedule(context.Background(), schedule.Caller{UserID: f.teacherUser.Hex(), Role: "parent"})
	assert.ErrorIs(t, err, schedule.ErrRoleNotAuthorized)
	_, err = f.svc.TodaySchedule(context.Background(), schedule.Caller{UserID: f.teacherUser.Hex(), Role: "parent"})
	assert.ErrorIs(t, err, schedule.ErrRoleNotAuthorized)
}

func TestSortByStartTimeStable(t *testing.T) {
	a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	periods := []models.ClassPeriod{
		{ID: a, StartTime: "10:00"},
		{ID: b, StartTime: "09:00"},
		{ID: c, StartTime: "10:00"},
	}
	assert.True(t, schedule.SortByStartTime(periods))
	assert.Equal(t, []primitive.ObjectID{b, a, c}, []primitive.ObjectID{periods[0].ID, periods[1].ID, periods[2].ID})

	assert.False(t, schedule.SortByStartTime([]models.ClassPeriod{{StartTime: "25:99"}, {StartTime: "01:00"}}))
}
