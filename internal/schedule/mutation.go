package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
)

func (s *Service) resolveTeacher(ctx context.Context, c Caller) (Identity, error) {
	if c.Role != RoleTeacher {
		return Identity{}, fmt.Errorf("role %q cannot modify schedules: %w", c.Role, ErrRoleNotAuthorized)
	}
	return s.Resolver.Resolve(ctx, c)
}

// CreateEntry validates in and stores it as a new entry owned by the caller.
func (s *Service) CreateEntry(ctx context.Context, c Caller, in models.EntryInput) (primitive.ObjectID, error) {
	owner, err := s.resolveTeacher(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	e, err := s.buildEntry(ctx, owner, in)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if err := s.Entries.InsertOne(ctx, &e); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert schedule entry: %w", err)
	}
	return e.ID, nil
}

// DeleteEntry removes one entry owned by the caller. A missing entry and an
// entry owned by another teacher produce the same error.
func (s *Service) DeleteEntry(ctx context.Context, c Caller, entryID string) error {
	owner, err := s.resolveTeacher(ctx, c)
	if err != nil {
		return err
	}
	id, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return fmt.Errorf("entry id %q: %w", entryID, ErrInvalidIdentifier)
	}

	n, err := s.Entries.DeleteOne(ctx, EntryFilter{ID: &id, TeacherID: &owner.TeacherID})
	if err != nil {
		return fmt.Errorf("delete schedule entry: %w", err)
	}
	if n > 0 {
		return nil
	}

	reason := DeleteReasonUnknown
	if cnt, err := s.Entries.Count(ctx, EntryFilter{ID: &id}); err == nil {
		reason = DeleteReasonMissing
		if cnt > 0 {
			reason = DeleteReasonNotOwner
		}
	}
	s.Log.Info("delete refused",
		zap.String("entry_id", entryID),
		zap.String("teacher_id", owner.TeacherID.Hex()),
		zap.String("reason", reason))
	return &DeleteRefusedError{EntryID: entryID, Reason: reason}
}

// ReplaceSchedule swaps the caller's whole schedule for in. Every subject
// reference is checked before anything is deleted; the delete and insert then
// run through EntryStore.ReplaceOwned. An empty in clears the schedule.
// Entries always get fresh ids, even when their content is unchanged.
func (s *Service) ReplaceSchedule(ctx context.Context, c Caller, in []models.EntryInput) (int, error) {
	owner, err := s.resolveTeacher(ctx, c)
	if err != nil {
		return 0, err
	}
	entries := make([]models.ScheduleEntry, 0, len(in))
	for _, item := range in {
		e, err := s.buildEntry(ctx, owner, item)
		if err != nil {
			return 0, err
		}
		entries = append(entries, e)
	}
	n, err := s.Entries.ReplaceOwned(ctx, owner.TeacherID, entries)
	if err != nil {
		return 0, fmt.Errorf("replace schedule: %w", err)
	}
	return n, nil
}

// buildEntry validates in and stamps ownership and a new id. Any owner the
// caller might try to pass is not part of EntryInput and cannot leak in.
func (s *Service) buildEntry(ctx context.Context, owner Identity, in models.EntryInput) (models.ScheduleEntry, error) {
	if !IsWeekday(in.Day) {
		return models.ScheduleEntry{}, fmt.Errorf("day %q: %w", in.Day, ErrInvalidEntry)
	}
	if in.Slot < 0 {
		return models.ScheduleEntry{}, fmt.Errorf("slot %d: %w", in.Slot, ErrInvalidEntry)
	}

	e := models.ScheduleEntry{
		ID:         primitive.NewObjectID(),
		Day:        in.Day,
		Slot:       in.Slot,
		StartTime:  strings.TrimSpace(in.StartTime),
		EndTime:    strings.TrimSpace(in.EndTime),
		TeacherID:  owner.TeacherID,
		RoomNumber: in.RoomNumber,
		Branch:     in.Branch,
		Semester:   in.Semester,
	}
	if e.Branch == nil {
		e.Branch = owner.Branch
	}
	if err := checkClock("start_time", e.StartTime); err != nil {
		return models.ScheduleEntry{}, err
	}
	if err := checkClock("end_time", e.EndTime); err != nil {
		return models.ScheduleEntry{}, err
	}

	if ref := strings.TrimSpace(in.SubjectID); ref != "" {
		subjectID, err := s.checkSubject(ctx, ref)
		if err != nil {
			return models.ScheduleEntry{}, err
		}
		e.SubjectID = &subjectID
	}
	return e, nil
}

// checkClock accepts an empty value or a 24-hour HH:MM time.
func checkClock(field, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(clockLayout, v); err != nil {
		return fmt.Errorf("%s %q: %w", field, v, ErrInvalidEntry)
	}
	return nil
}

func (s *Service) checkSubject(ctx context.Context, ref string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return primitive.NilObjectID, &SubjectReferenceError{SubjectID: ref}
	}
	ok, err := s.Subjects.Exists(ctx, id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("check subject %s: %w", ref, err)
	}
	if !ok {
		return primitive.NilObjectID, &SubjectReferenceError{SubjectID: ref}
	}
	return id, nil
}
