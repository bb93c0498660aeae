package models

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyTeacher is the superseded teacher document that embedded its own
// timetable as schedule.timetable[].periods[].
//
// The nested values were written by hand over the years and their types are
// not consistent (a grade may be 4 or "4th Sem", a slot may be "2"), so they
// are kept raw and read through the accessors below.
type LegacyTeacher struct {
	ID       primitive.ObjectID `bson:"_id"`
	Branch   bson.RawValue      `bson:"branch"`
	Schedule LegacySchedule     `bson:"schedule"`
}

type LegacySchedule struct {
	Timetable []LegacyDay `bson:"timetable"`
}

type LegacyDay struct {
	Day     bson.RawValue  `bson:"day"`
	Periods []LegacyPeriod `bson:"periods"`
}

type LegacyPeriod struct {
	Slot     bson.RawValue `bson:"slot"`
	Start    bson.RawValue `bson:"start"`
	End      bson.RawValue `bson:"end"`
	Metadata bson.RawValue `bson:"metadata"`
}

// BranchName returns the teacher's branch, or nil when unset.
func (t LegacyTeacher) BranchName() *string {
	b := LooseString(t.Branch)
	if b == "" {
		return nil
	}
	return &b
}

func (d LegacyDay) Name() string { return LooseString(d.Day) }

func (p LegacyPeriod) StartTime() string { return LooseString(p.Start) }

func (p LegacyPeriod) EndTime() string { return LooseString(p.End) }

// SlotNumber returns the slot, or 0 when it is missing or not a number.
func (p LegacyPeriod) SlotNumber() int {
	n, _ := LooseInt(p.Slot)
	return n
}

// Meta returns metadata[key] as a string. Missing metadata, a metadata value
// that is not a document, or a missing key all give "".
func (p LegacyPeriod) Meta(key string) string {
	doc, ok := p.Metadata.DocumentOK()
	if !ok {
		return ""
	}
	v, err := doc.LookupErr(key)
	if err != nil {
		return ""
	}
	return LooseString(v)
}

// LooseString renders scalar BSON values as text. Anything else is "".
func LooseString(v bson.RawValue) string {
	switch v.Type {
	case bsontype.String:
		return strings.TrimSpace(v.StringValue())
	case bsontype.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bsontype.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case bsontype.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case bsontype.ObjectID:
		return v.ObjectID().Hex()
	}
	return ""
}

// LooseInt reads numeric or numeric-string BSON values.
func LooseInt(v bson.RawValue) (int, bool) {
	switch v.Type {
	case bsontype.Int32:
		return int(v.Int32()), true
	case bsontype.Int64:
		return int(v.Int64()), true
	case bsontype.Double:
		return int(v.Double()), true
	case bsontype.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.StringValue()))
		return n, err == nil
	}
	return 0, false
}
