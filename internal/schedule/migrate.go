package schedule

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
)

// MigrationResult summarises one migration run.
type MigrationResult struct {
	RunID    string `json:"run_id"`
	Existing int64  `json:"existing"`
	Migrated int    `json:"migrated"`
	Skipped  int    `json:"skipped"`
	DryRun   bool   `json:"dry_run"`
}

// Migrator flattens legacy nested teacher timetables into schedule entries.
//
// It only runs against an empty entry collection. The emptiness check and the
// final insert are separate store calls, so two runs started at the same
// moment are not protected from each other.
type Migrator struct {
	Entries EntryStore
	Legacy  LegacySource
	Log     *zap.Logger
	DryRun  bool
}

func (m *Migrator) Run(ctx context.Context) (MigrationResult, error) {
	log := m.Log
	if log == nil {
		log = zap.NewNop()
	}
	res := MigrationResult{RunID: uuid.NewString(), DryRun: m.DryRun}
	log = log.With(zap.String("run_id", res.RunID))

	count, err := m.Entries.Count(ctx, EntryFilter{})
	if err != nil {
		return res, fmt.Errorf("count schedule entries: %w", err)
	}
	if count > 0 {
		res.Existing = count
		log.Info("schedules collection already populated, skipping migration", zap.Int64("existing", count))
		return res, nil
	}

	var batch []models.ScheduleEntry
	err = m.Legacy.EachTeacher(ctx, func(t models.LegacyTeacher) error {
		entries, skipped := flattenTeacher(t, log)
		batch = append(batch, entries...)
		res.Skipped += skipped
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("scan legacy teachers: %w", err)
	}

	if len(batch) == 0 {
		log.Info("no schedule data to migrate", zap.Int("skipped", res.Skipped))
		return res, nil
	}
	if m.DryRun {
		res.Migrated = len(batch)
		log.Info("dry run, nothing written", zap.Int("would_migrate", len(batch)), zap.Int("skipped", res.Skipped))
		return res, nil
	}

	n, err := m.Entries.InsertMany(ctx, batch)
	if err != nil {
		return res, fmt.Errorf("insert migrated entries: %w", err)
	}
	res.Migrated = n
	log.Info("legacy schedules migrated", zap.Int("migrated", n), zap.Int("skipped", res.Skipped))
	return res, nil
}

func flattenTeacher(t models.LegacyTeacher, log *zap.Logger) ([]models.ScheduleEntry, int) {
	var out []models.ScheduleEntry
	skipped := 0
	branch := t.BranchName()
	for _, day := range t.Schedule.Timetable {
		dayName := day.Name()
		for _, p := range day.Periods {
			start, end := p.StartTime(), p.EndTime()
			if dayName == "" || start == "" || end == "" {
				log.Info("skipping incomplete legacy period",
					zap.String("teacher_id", t.ID.Hex()),
					zap.String("day", dayName),
					zap.String("start", start),
					zap.String("end", end))
				skipped++
				continue
			}

			e := models.ScheduleEntry{
				ID:        primitive.NewObjectID(),
				Day:       dayName,
				Slot:      p.SlotNumber(),
				StartTime: start,
				EndTime:   end,
				TeacherID: t.ID,
				Branch:    branch,
				Semester:  SemesterFromGrade(p.Meta("grade")),
			}
			if ref := p.Meta("subject_id"); ref != "" {
				if id, err := primitive.ObjectIDFromHex(ref); err == nil {
					e.SubjectID = &id
				} else {
					log.Warn("legacy subject id is not an ObjectID, migrating without subject",
						zap.String("teacher_id", t.ID.Hex()),
						zap.String("subject_id", ref))
				}
			}
			if room := p.Meta("room"); room != "" {
				e.RoomNumber = &room
			}
			out = append(out, e)
		}
	}
	return out, skipped
}

var firstInteger = regexp.MustCompile(`\d+`)

// SemesterFromGrade is a best-effort guess: the first integer embedded in a
// free-text grade label ("4th Sem" -> 4). It returns nil when there is none.
// Nothing guarantees that integer is really the semester.
func SemesterFromGrade(grade string) *int {
	m := firstInteger.FindString(grade)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}
