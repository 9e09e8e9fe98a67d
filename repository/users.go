package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SAI-KARTHIK999/SkinSey/middleware"
	"github.com/SAI-KARTHIK999/SkinSey/model"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("users"),
	}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	timer := middleware.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Email == "" || user.Password == "" {
		middleware.TrackError("validation")
		return primitive.NilObjectID, errors.New("email and password required")
	}

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		middleware.TrackError("db")
		return primitive.NilObjectID, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindUserByEmail returns (nil, nil) when no user exists.
func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := middleware.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		middleware.TrackError("db")
		return nil, err
	}
	return &user, nil
}

// SaveOnboarding stores the questionnaire answers and marks onboarding done.
func (r *UserRepo) SaveOnboarding(ctx context.Context, email string, profile *model.SkinProfile) error {
	timer := middleware.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"onboardingCompleted": true,
			"profile":             profile,
			"updatedAt":           time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) CountUsers(ctx context.Context) (int64, error) {
	timer := middleware.TrackDBOperation("count", "users")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{})
}
