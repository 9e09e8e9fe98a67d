package repository

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SAI-KARTHIK999/SkinSey/middleware"
	"github.com/SAI-KARTHIK999/SkinSey/model"
)

type MedicationsRepo struct {
	Logs      *mongo.Collection
	Schedules *mongo.Collection
}

func GetMedicationsRepo(client *mongo.Client) *MedicationsRepo {
	db := client.Database(os.Getenv("MONGO_DB"))
	return &MedicationsRepo{
		Logs:      db.Collection("medicationLogs"),
		Schedules: db.Collection("medicationSchedules"),
	}
}

func (r *MedicationsRepo) InsertLog(ctx context.Context, entry *model.MedicationLog) (primitive.ObjectID, error) {
	timer := middleware.TrackDBOperation("insert", "medicationLogs")
	defer timer.ObserveDuration()

	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()

	result, err := r.Logs.InsertOne(ctx, entry)
	if err != nil {
		middleware.TrackError("db")
		return primitive.NilObjectID, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// GetLogsSince returns logs dated on or after since. Ascending order feeds
// the progress calculator.
func (r *MedicationsRepo) GetLogsSince(ctx context.Context, userID primitive.ObjectID, since time.Time, ascending bool) ([]*model.MedicationLog, error) {
	timer := middleware.TrackDBOperation("find", "medicationLogs")
	defer timer.ObserveDuration()

	order := -1
	if ascending {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: order}})
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": since},
	}

	cursor, err := r.Logs.Find(ctx, filter, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.MedicationLog
	if err = cursor.All(ctx, &logs); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return logs, nil
}

func (r *MedicationsRepo) UpdateLog(ctx context.Context, logID, userID primitive.ObjectID, fields bson.M) error {
	timer := middleware.TrackDBOperation("update", "medicationLogs")
	defer timer.ObserveDuration()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"_id": logID, "userId": userID}

	result, err := r.Logs.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) DeleteLog(ctx context.Context, logID, userID primitive.ObjectID) error {
	timer := middleware.TrackDBOperation("delete", "medicationLogs")
	defer timer.ObserveDuration()

	result, err := r.Logs.DeleteOne(ctx, bson.M{"_id": logID, "userId": userID})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) GetSchedules(ctx context.Context, userID primitive.ObjectID) ([]*model.MedicationSchedule, error) {
	timer := middleware.TrackDBOperation("find", "medicationSchedules")
	defer timer.ObserveDuration()

	cursor, err := r.Schedules.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*model.MedicationSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return schedules, nil
}
