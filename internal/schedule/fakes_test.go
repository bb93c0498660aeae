package schedule_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
	"github.com/mghazyfawazh/smart-attendance/internal/schedule"
)

type memEntries struct {
	mu      sync.Mutex
	rows    []models.ScheduleEntry
	inserts int
}

func (m *memEntries) Find(_ context.Context, f schedule.EntryFilter) ([]models.ScheduleEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScheduleEntry
	for _, r := range m.rows {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memEntries) InsertOne(_ context.Context, e *models.ScheduleEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *e)
	m.inserts++
	return nil
}

func (m *memEntries) InsertMany(_ context.Context, es []models.ScheduleEntry) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, es...)
	m.inserts += len(es)
	return len(es), nil
}

func (m *memEntries) delete(f schedule.EntryFilter, limit int) int64 {
	var kept []models.ScheduleEntry
	var n int64
	for _, r := range m.rows {
		if f.Matches(r) && (limit == 0 || n < int64(limit)) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.rows = kept
	return n
}

func (m *memEntries) DeleteOne(_ context.Context, f schedule.EntryFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.delete(f, 1), nil
}

func (m *memEntries) DeleteMany(_ context.Context, f schedule.EntryFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.delete(f, 0), nil
}

func (m *memEntries) Count(_ context.Context, f schedule.EntryFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if f.Matches(r) {
			n++
		}
	}
	return n, nil
}

func (m *memEntries) ReplaceOwned(_ context.Context, teacherID primitive.ObjectID, es []models.ScheduleEntry) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delete(schedule.EntryFilter{TeacherID: &teacherID}, 0)
	m.rows = append(m.rows, es...)
	m.inserts += len(es)
	return len(es), nil
}

type mockProfiles struct {
	mock.Mock
}

func (m *mockProfiles) TeacherByUser(ctx context.Context, userID primitive.ObjectID) (*models.Teacher, error) {
	args := m.Called(ctx, userID)
	t, _ := args.Get(0).(*models.Teacher)
	return t, args.Error(1)
}

func (m *mockProfiles) StudentByUser(ctx context.Context, userID primitive.ObjectID) (*models.Student, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*models.Student)
	return s, args.Error(1)
}

// catalog is a fixed subject catalog.
type catalog map[primitive.ObjectID]string

func (c catalog) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := c[id]
	return ok, nil
}

func (c catalog) Names(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := map[primitive.ObjectID]string{}
	for _, id := range ids {
		if n, ok := c[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type fixedDay string

func (d fixedDay) Today() string { return string(d) }

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type fixture struct {
	svc      *schedule.Service
	entries  *memEntries
	profiles *mockProfiles
	subjects catalog

	teacherUser primitive.ObjectID
	teacher     models.Teacher
	otherUser   primitive.ObjectID
	other       models.Teacher
	math        primitive.ObjectID
}

func newFixture(today string) *fixture {
	f := &fixture{
		entries:     &memEntries{},
		profiles:    &mockProfiles{},
		subjects:    catalog{},
		teacherUser: primitive.NewObjectID(),
		otherUser:   primitive.NewObjectID(),
		math:        primitive.NewObjectID(),
	}
	f.subjects[f.math] = "Mathematics"
	f.teacher = models.Teacher{ID: primitive.NewObjectID(), UserID: f.teacherUser, Branch: strPtr("CSE")}
	f.other = models.Teacher{ID: primitive.NewObjectID(), UserID: f.otherUser, Branch: strPtr("ECE")}
	f.profiles.On("TeacherByUser", mock.Anything, f.teacherUser).Return(&f.teacher, nil).Maybe()
	f.profiles.On("TeacherByUser", mock.Anything, f.otherUser).Return(&f.other, nil).Maybe()
	f.svc = schedule.NewService(f.entries, f.profiles, f.subjects, fixedDay(today), nil)
	return f
}

func (f *fixture) teacherCaller() schedule.Caller {
	return schedule.Caller{UserID: f.teacherUser.Hex(), Role: schedule.RoleTeacher}
}

func (f *fixture) otherCaller() schedule.Caller {
	return schedule.Caller{UserID: f.otherUser.Hex(), Role: schedule.RoleTeacher}
}

// addStudent registers a student profile and returns its caller.
func (f *fixture) addStudent(branch *string, semester *int) schedule.Caller {
	user := primitive.NewObjectID()
	f.profiles.On("StudentByUser", mock.Anything, user).
		Return(&models.Student{ID: primitive.NewObjectID(), UserID: user, Branch: branch, Semester: semester}, nil).Maybe()
	return schedule.Caller{UserID: user.Hex(), Role: schedule.RoleStudent}
}

func (f *fixture) seed(e models.ScheduleEntry) models.ScheduleEntry {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	f.entries.rows = append(f.entries.rows, e)
	return e
}
