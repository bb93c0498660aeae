package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
)

// UnknownSubject replaces the name of a subject that cannot be resolved.
const UnknownSubject = "Unknown Subject"

const clockLayout = "15:04"

// scope builds the visibility predicate for id. ok is false when the caller
// may see nothing (a student without a complete cohort key).
func scope(id Identity) (f EntryFilter, ok bool) {
	if id.Role == RoleTeacher {
		teacherID := id.TeacherID
		return EntryFilter{TeacherID: &teacherID}, true
	}
	if !id.CohortComplete() {
		return EntryFilter{}, false
	}
	branch, semester := *id.Branch, *id.Semester
	return EntryFilter{Branch: &branch, Semester: &semester}, true
}

// FullSchedule returns every visible entry in store order.
func (s *Service) FullSchedule(ctx context.Context, c Caller) ([]models.ClassPeriod, error) {
	id, err := s.Resolver.Resolve(ctx, c)
	if err != nil {
		return nil, err
	}
	f, ok := scope(id)
	if !ok {
		s.Log.Debug("student cohort incomplete, empty schedule", zap.String("user_id", c.UserID))
		return []models.ClassPeriod{}, nil
	}
	entries, err := s.Entries.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find schedule entries: %w", err)
	}
	return s.enrich(ctx, entries)
}

// TodaySchedule returns the visible entries for the current weekday, ordered
// by start time when every start time parses.
func (s *Service) TodaySchedule(ctx context.Context, c Caller) (models.TodaySchedule, error) {
	id, err := s.Resolver.Resolve(ctx, c)
	if err != nil {
		return models.TodaySchedule{}, err
	}
	today := s.Days.Today()
	out := models.TodaySchedule{Classes: []models.ClassPeriod{}, CurrentDay: today}

	f, ok := scope(id)
	if !ok {
		s.Log.Debug("student cohort incomplete, empty schedule", zap.String("user_id", c.UserID))
		return out, nil
	}
	f.Day = today

	entries, err := s.Entries.Find(ctx, f)
	if err != nil {
		return models.TodaySchedule{}, fmt.Errorf("find today's entries: %w", err)
	}

	resolvable := entries[:0:0]
	for _, e := range entries {
		if !e.Resolvable() {
			continue
		}
		resolvable = append(resolvable, e)
	}

	classes, err := s.enrich(ctx, resolvable)
	if err != nil {
		return models.TodaySchedule{}, err
	}
	if !SortByStartTime(classes) {
		s.Log.Warn("unparseable start time, keeping query order", zap.String("day", today))
	}
	out.Classes = classes
	return out, nil
}

// SortByStartTime orders periods by HH:MM start time. If any start time does
// not parse, periods is left untouched and false is returned.
func SortByStartTime(periods []models.ClassPeriod) bool {
	parsed := make([]time.Time, len(periods))
	for i, p := range periods {
		t, err := time.Parse(clockLayout, p.StartTime)
		if err != nil {
			return false
		}
		parsed[i] = t
	}
	idx := make([]int, len(periods))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return parsed[idx[a]].Before(parsed[idx[b]])
	})
	sorted := make([]models.ClassPeriod, len(periods))
	for i, j := range idx {
		sorted[i] = periods[j]
	}
	copy(periods, sorted)
	return true
}

// enrich attaches subject names. Missing or deleted subjects get UnknownSubject.
func (s *Service) enrich(ctx context.Context, entries []models.ScheduleEntry) ([]models.ClassPeriod, error) {
	out := make([]models.ClassPeriod, 0, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	seen := map[primitive.ObjectID]bool{}
	var ids []primitive.ObjectID
	for _, e := range entries {
		if e.SubjectID != nil && !seen[*e.SubjectID] {
			seen[*e.SubjectID] = true
			ids = append(ids, *e.SubjectID)
		}
	}
	names := map[primitive.ObjectID]string{}
	if len(ids) > 0 {
		var err error
		names, err = s.Subjects.Names(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve subject names: %w", err)
		}
	}

	for _, e := range entries {
		name := UnknownSubject
		if e.SubjectID != nil {
			if n, ok := names[*e.SubjectID]; ok {
				name = n
			} else {
				s.Log.Warn("dangling subject reference",
					zap.String("entry_id", e.ID.Hex()),
					zap.String("subject_id", e.SubjectID.Hex()))
			}
		}
		out = append(out, models.ClassPeriod{
			ID:          e.ID,
			Day:         e.Day,
			Slot:        e.Slot,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			TeacherID:   e.TeacherID,
			SubjectID:   e.SubjectID,
			SubjectName: name,
			RoomNumber:  e.RoomNumber,
			Branch:      e.Branch,
			Semester:    e.Semester,
		})
	}
	return out, nil
}
