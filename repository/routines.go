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

type RoutinesRepo struct {
	Completions *mongo.Collection
	Templates   *mongo.Collection
}

func GetRoutinesRepo(client *mongo.Client) *RoutinesRepo {
	db := client.Database(os.Getenv("MONGO_DB"))
	return &RoutinesRepo{
		Completions: db.Collection("routineCompletions"),
		Templates:   db.Collection("routineTemplates"),
	}
}

// UpsertCompletion writes the day's record in a single operation keyed on
// (userId, date). Later writes for the same day overwrite the earlier ones.
func (r *RoutinesRepo) UpsertCompletion(ctx context.Context, completion *model.RoutineCompletion) error {
	timer := middleware.TrackDBOperation("upsert", "routineCompletions")
	defer timer.ObserveDuration()

	now := time.Now()
	filter := bson.M{
		"userId": completion.UserID,
		"date":   completion.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"morningSteps": completion.MorningSteps,
			"eveningSteps": completion.EveningSteps,
			"score":        completion.Score,
			"completed":    completion.Completed,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"userId":    completion.UserID,
			"date":      completion.Date,
			"createdAt": now,
		},
	}

	_, err := r.Completions.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		middleware.TrackError("db")
	}
	return err
}

// UpdateCompletion applies a partial update to a record the user owns.
func (r *RoutinesRepo) UpdateCompletion(ctx context.Context, completionID, userID primitive.ObjectID, fields bson.M) error {
	timer := middleware.TrackDBOperation("update", "routineCompletions")
	defer timer.ObserveDuration()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"_id": completionID, "userId": userID}

	result, err := r.Completions.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCompletionsSince returns records dated on or after since. Ascending
// order feeds the progress calculator; descending feeds recent lists.
func (r *RoutinesRepo) GetCompletionsSince(ctx context.Context, userID primitive.ObjectID, since time.Time, ascending bool) ([]*model.RoutineCompletion, error) {
	timer := middleware.TrackDBOperation("find", "routineCompletions")
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

	cursor, err := r.Completions.Find(ctx, filter, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var completions []*model.RoutineCompletion
	if err = cursor.All(ctx, &completions); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return completions, nil
}

func (r *RoutinesRepo) GetRecentCompletions(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.RoutineCompletion, error) {
	timer := middleware.TrackDBOperation("find", "routineCompletions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)

	cursor, err := r.Completions.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var completions []*model.RoutineCompletion
	if err = cursor.All(ctx, &completions); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return completions, nil
}

// GetTemplate returns (nil, nil) when the user has not configured one.
func (r *RoutinesRepo) GetTemplate(ctx context.Context, userID primitive.ObjectID) (*model.RoutineTemplate, error) {
	timer := middleware.TrackDBOperation("find", "routineTemplates")
	defer timer.ObserveDuration()

	var template model.RoutineTemplate
	err := r.Templates.FindOne(ctx, bson.M{"userId": userID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		middleware.TrackError("db")
		return nil, err
	}
	return &template, nil
}

// UpsertTemplate replaces the user's template in a single keyed operation.
// Past completion records keep their stored scores.
func (r *RoutinesRepo) UpsertTemplate(ctx context.Context, userID primitive.ObjectID, morning, evening []string, note string) error {
	timer := middleware.TrackDBOperation("upsert", "routineTemplates")
	defer timer.ObserveDuration()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"morning":   morning,
			"evening":   evening,
			"note":      note,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": now,
		},
	}

	_, err := r.Templates.UpdateOne(ctx, bson.M{"userId": userID}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		middleware.TrackError("db")
	}
	return err
}
