package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mghazyfawazh/smart-attendance/internal/models"
	"github.com/mghazyfawazh/smart-attendance/internal/schedule"
)

// MongoRepo stores schedule entries in the "schedules" collection.
type MongoRepo struct {
	Coll *mongo.Collection
	// Transactions makes ReplaceOwned run its delete and insert in one
	// multi-document transaction. Requires a replica set or sharded cluster.
	Transactions bool
	Log          *zap.Logger
}

func NewMongoRepo(ctx context.Context, coll *mongo.Collection, transactions bool, log *zap.Logger) *MongoRepo {
	if log == nil {
		log = zap.NewNop()
	}

	// teacher views: teacher_id + day
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "teacher_id", Value: 1},
			{Key: "day", Value: 1},
		},
		Options: options.Index().SetBackground(true),
	})
	if err != nil {
		log.Warn("create schedules teacher index", zap.Error(err))
	}

	// student views: cohort + day
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "branch", Value: 1},
			{Key: "semester", Value: 1},
			{Key: "day", Value: 1},
		},
		Options: options.Index().SetBackground(true),
	})
	if err != nil {
		log.Warn("create schedules cohort index", zap.Error(err))
	}

	return &MongoRepo{Coll: coll, Transactions: transactions, Log: log}
}

// EntryFilterDoc converts f into a query document.
func EntryFilterDoc(f schedule.EntryFilter) bson.M {
	doc := bson.M{}
	if f.ID != nil {
		doc["_id"] = *f.ID
	}
	if f.TeacherID != nil {
		doc["teacher_id"] = *f.TeacherID
	}
	if f.Branch != nil {
		doc["branch"] = *f.Branch
	}
	if f.Semester != nil {
		doc["semester"] = *f.Semester
	}
	if f.Day != "" {
		doc["day"] = f.Day
	}
	return doc
}

func (r *MongoRepo) Find(ctx context.Context, f schedule.EntryFilter) ([]models.ScheduleEntry, error) {
	cur, err := r.Coll.Find(ctx, EntryFilterDoc(f))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ScheduleEntry{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) InsertOne(ctx context.Context, e *models.ScheduleEntry) error {
	res, err := r.Coll.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = id
	}
	return nil
}

func (r *MongoRepo) InsertMany(ctx context.Context, es []models.ScheduleEntry) (int, error) {
	if len(es) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(es))
	for i := range es {
		docs = append(docs, es[i])
	}
	res, err := r.Coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (r *MongoRepo) DeleteOne(ctx context.Context, f schedule.EntryFilter) (int64, error) {
	res, err := r.Coll.DeleteOne(ctx, EntryFilterDoc(f))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepo) DeleteMany(ctx context.Context, f schedule.EntryFilter) (int64, error) {
	res, err := r.Coll.DeleteMany(ctx, EntryFilterDoc(f))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoRepo) Count(ctx context.Context, f schedule.EntryFilter) (int64, error) {
	return r.Coll.CountDocuments(ctx, EntryFilterDoc(f))
}

// ReplaceOwned deletes all of teacherID's entries and inserts es. With
// Transactions enabled both steps commit together. Without it they run as two
// separate writes and a reader, or a crash, can catch the teacher with no
// entries in between.
func (r *MongoRepo) ReplaceOwned(ctx context.Context, teacherID primitive.ObjectID, es []models.ScheduleEntry) (int, error) {
	if !r.Transactions {
		r.Log.Debug("replacing schedule without transaction", zap.String("teacher_id", teacherID.Hex()))
		return r.replace(ctx, teacherID, es)
	}

	sess, err := r.Coll.Database().Client().StartSession()
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	out, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return r.replace(sc, teacherID, es)
	})
	if err != nil {
		return 0, err
	}
	return out.(int), nil
}

func (r *MongoRepo) replace(ctx context.Context, teacherID primitive.ObjectID, es []models.ScheduleEntry) (int, error) {
	if _, err := r.DeleteMany(ctx, schedule.EntryFilter{TeacherID: &teacherID}); err != nil {
		return 0, fmt.Errorf("delete owned entries: %w", err)
	}
	n, err := r.InsertMany(ctx, es)
	if err != nil {
		return 0, fmt.Errorf("insert replacement entries: %w", err)
	}
	return n, nil
}
