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

type RemindersRepo struct {
	MongoCollection *mongo.Collection
}

func GetRemindersRepo(client *mongo.Client) *RemindersRepo {
	return &RemindersRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("reminders"),
	}
}

func (r *RemindersRepo) InsertReminder(ctx context.Context, reminder *model.Reminder) (primitive.ObjectID, error) {
	timer := middleware.TrackDBOperation("insert", "reminders")
	defer timer.ObserveDuration()

	reminder.CreatedAt = time.Now()
	reminder.UpdatedAt = time.Now()

	result, err := r.MongoCollection.InsertOne(ctx, reminder)
	if err != nil {
		middleware.TrackError("db")
		return primitive.NilObjectID, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *RemindersRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Reminder, error) {
	timer := middleware.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []*model.Reminder
	if err = cursor.All(ctx, &reminders); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return reminders, nil
}

// ListPending returns uncompleted reminders ordered by due date.
func (r *RemindersRepo) ListPending(ctx context.Context, userID primitive.ObjectID) ([]*model.Reminder, error) {
	timer := middleware.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	filter := bson.M{"userId": userID, "completed": false}

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []*model.Reminder
	if err = cursor.All(ctx, &reminders); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return reminders, nil
}

func (r *RemindersRepo) UpdateReminder(ctx context.Context, reminderID, userID primitive.ObjectID, fields bson.M) error {
	timer := middleware.TrackDBOperation("update", "reminders")
	defer timer.ObserveDuration()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"_id": reminderID, "userId": userID}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) DeleteReminder(ctx context.Context, reminderID, userID primitive.ObjectID) error {
	timer := middleware.TrackDBOperation("delete", "reminders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": reminderID, "userId": userID})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
