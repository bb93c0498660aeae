package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
)

// ProfileRepo reads the teachers and students collections. Profiles are
// owned elsewhere; this repo never writes them.
type ProfileRepo struct {
	Teachers *mongo.Collection
	Students *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) *ProfileRepo {
	return &ProfileRepo{Teachers: db.Collection("teachers"), Students: db.Collection("students")}
}

func (r *ProfileRepo) TeacherByUser(ctx context.Context, userID primitive.ObjectID) (*models.Teacher, error) {
	var t models.Teacher
	if err := r.Teachers.FindOne(ctx, bson.M{"userId": userID}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *ProfileRepo) StudentByUser(ctx context.Context, userID primitive.ObjectID) (*models.Student, error) {
	var s models.Student
	if err := r.Students.FindOne(ctx, bson.M{"userId": userID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// LegacyRepo streams teacher documents that still carry the nested timetable.
type LegacyRepo struct {
	Teachers *mongo.Collection
	Log      *zap.Logger
}

func NewLegacyRepo(db *mongo.Database, log *zap.Logger) *LegacyRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &LegacyRepo{Teachers: db.Collection("teachers"), Log: log}
}

// DecodeLegacyTeacher decodes one raw teacher document.
func DecodeLegacyTeacher(raw bson.Raw) (models.LegacyTeacher, error) {
	var t models.LegacyTeacher
	err := bson.Unmarshal(raw, &t)
	return t, err
}

// EachTeacher calls fn for every teacher document. A document that cannot be
// decoded at all (for example a non-ObjectID _id) is logged and skipped.
func (r *LegacyRepo) EachTeacher(ctx context.Context, fn func(models.LegacyTeacher) error) error {
	cur, err := r.Teachers.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		t, err := DecodeLegacyTeacher(cur.Current)
		if err != nil {
			r.Log.Warn("skipping undecodable legacy teacher",
				zap.String("_id", cur.Current.Lookup("_id").String()),
				zap.Error(err))
			continue
		}
		if err := fn(t); err != nil {
			return err
		}
	}
	return cur.Err()
}
