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

type AnalysesRepo struct {
	MongoCollection *mongo.Collection
}

func GetAnalysesRepo(client *mongo.Client) *AnalysesRepo {
	return &AnalysesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("skinAnalyses"),
	}
}

func (r *AnalysesRepo) InsertAnalysis(ctx context.Context, analysis *model.SkinAnalysis) error {
	timer := middleware.TrackDBOperation("insert", "skinAnalyses")
	defer timer.ObserveDuration()

	analysis.CreatedAt = time.Now()
	_, err := r.MongoCollection.InsertOne(ctx, analysis)
	if err != nil {
		middleware.TrackError("db")
	}
	return err
}

// GetRecentAnalyses returns the newest analyses first. limit <= 0 means no
// limit.
func (r *AnalysesRepo) GetRecentAnalyses(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.SkinAnalysis, error) {
	timer := middleware.TrackDBOperation("find", "skinAnalyses")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var analyses []*model.SkinAnalysis
	if err = cursor.All(ctx, &analyses); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return analyses, nil
}

// GetAnalysesSince returns analyses created on or after since, oldest first.
func (r *AnalysesRepo) GetAnalysesSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]*model.SkinAnalysis, error) {
	timer := middleware.TrackDBOperation("find", "skinAnalyses")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	filter := bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": since},
	}

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var analyses []*model.SkinAnalysis
	if err = cursor.All(ctx, &analyses); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return analyses, nil
}
