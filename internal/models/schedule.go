package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleEntry is one class period in the flat "schedules" collection.
// Branch and Semester are copied when the entry is written and are not
// re-derived from the teacher later.
type ScheduleEntry struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Day        string              `bson:"day" json:"day"`
	Slot       int                 `bson:"slot" json:"slot"`
	StartTime  string              `bson:"start_time" json:"start_time"`
	EndTime    string              `bson:"end_time" json:"end_time"`
	TeacherID  primitive.ObjectID  `bson:"teacher_id" json:"teacher_id"`
	SubjectID  *primitive.ObjectID `bson:"subject_id" json:"subject_id"`
	RoomNumber *string             `bson:"room_number" json:"room_number"`
	Branch     *string             `bson:"branch" json:"branch"`
	Semester   *int                `bson:"semester" json:"semester"`
}

// Resolvable reports whether the entry has both times set.
func (e ScheduleEntry) Resolvable() bool {
	return e.StartTime != "" && e.EndTime != ""
}

// ClassPeriod is an entry enriched for display.
type ClassPeriod struct {
	ID               primitive.ObjectID  `json:"id"`
	Day              string              `json:"day"`
	Slot             int                 `json:"slot"`
	StartTime        string              `json:"start_time"`
	EndTime          string              `json:"end_time"`
	TeacherID        primitive.ObjectID  `json:"teacher_id"`
	SubjectID        *primitive.ObjectID `json:"subject_id"`
	SubjectName      string              `json:"subject_name"`
	RoomNumber       *string             `json:"room_number"`
	Branch           *string             `json:"branch"`
	Semester         *int                `json:"semester"`
	AttendanceStatus *string             `json:"attendance_status"`
}

// EntryInput is the caller-supplied field set for create and replace-all.
// There is no owner field: ownership always comes from the resolved teacher.
type EntryInput struct {
	Day        string  `json:"day" binding:"required"`
	Slot       int     `json:"slot" binding:"min=0"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	SubjectID  string  `json:"subject_id"`
	RoomNumber *string `json:"room_number"`
	Branch     *string `json:"branch"`
	Semester   *int    `json:"semester"`
}

// TodaySchedule is the today-view payload.
type TodaySchedule struct {
	Classes    []ClassPeriod `json:"classes"`
	CurrentDay string        `json:"current_day"`
}
