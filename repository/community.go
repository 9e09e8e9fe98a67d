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

const communityListLimit = 50

type CommunityRepo struct {
	Tips    *mongo.Collection
	Stories *mongo.Collection
}

func GetCommunityRepo(client *mongo.Client) *CommunityRepo {
	db := client.Database(os.Getenv("MONGO_DB"))
	return &CommunityRepo{
		Tips:    db.Collection("tips"),
		Stories: db.Collection("successStories"),
	}
}

func (r *CommunityRepo) ListTips(ctx context.Context) ([]*model.Tip, error) {
	timer := middleware.TrackDBOperation("find", "tips")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(communityListLimit)

	cursor, err := r.Tips.Find(ctx, bson.M{}, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tips []*model.Tip
	if err = cursor.All(ctx, &tips); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return tips, nil
}

func (r *CommunityRepo) InsertTip(ctx context.Context, tip *model.Tip) error {
	timer := middleware.TrackDBOperation("insert", "tips")
	defer timer.ObserveDuration()

	tip.CreatedAt = time.Now()
	_, err := r.Tips.InsertOne(ctx, tip)
	if err != nil {
		middleware.TrackError("db")
	}
	return err
}

// LikeTip increments the like counter. Any authenticated user may like any
// tip, repeatedly; there is no per-user like tracking.
func (r *CommunityRepo) LikeTip(ctx context.Context, tipID primitive.ObjectID) error {
	timer := middleware.TrackDBOperation("update", "tips")
	defer timer.ObserveDuration()

	result, err := r.Tips.UpdateOne(ctx, bson.M{"_id": tipID}, bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTip removes a tip only when the caller authored it.
func (r *CommunityRepo) DeleteTip(ctx context.Context, tipID primitive.ObjectID, ownerEmail string) error {
	timer := middleware.TrackDBOperation("delete", "tips")
	defer timer.ObserveDuration()

	result, err := r.Tips.DeleteOne(ctx, bson.M{"_id": tipID, "ownerEmail": ownerEmail})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommunityRepo) ListStories(ctx context.Context) ([]*model.SuccessStory, error) {
	timer := middleware.TrackDBOperation("find", "successStories")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(communityListLimit)

	cursor, err := r.Stories.Find(ctx, bson.M{}, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var stories []*model.SuccessStory
	if err = cursor.All(ctx, &stories); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return stories, nil
}

func (r *CommunityRepo) InsertStory(ctx context.Context, story *model.SuccessStory) error {
	timer := middleware.TrackDBOperation("insert", "successStories")
	defer timer.ObserveDuration()

	story.CreatedAt = time.Now()
	_, err := r.Stories.InsertOne(ctx, story)
	if err != nil {
		middleware.TrackError("db")
	}
	return err
}

func (r *CommunityRepo) DeleteStory(ctx context.Context, storyID primitive.ObjectID, ownerEmail string) error {
	timer := middleware.TrackDBOperation("delete", "successStories")
	defer timer.ObserveDuration()

	result, err := r.Stories.DeleteOne(ctx, bson.M{"_id": storyID, "ownerEmail": ownerEmail})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommunityRepo) CountTips(ctx context.Context) (int64, error) {
	timer := middleware.TrackDBOperation("count", "tips")
	defer timer.ObserveDuration()

	return r.Tips.CountDocuments(ctx, bson.M{})
}

func (r *CommunityRepo) CountStories(ctx context.Context) (int64, error) {
	timer := middleware.TrackDBOperation("count", "successStories")
	defer timer.ObserveDuration()

	return r.Stories.CountDocuments(ctx, bson.M{})
}
