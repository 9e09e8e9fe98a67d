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

type AppointmentsRepo struct {
	MongoCollection *mongo.Collection
}

func GetAppointmentsRepo(client *mongo.Client) *AppointmentsRepo {
	return &AppointmentsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("appointments"),
	}
}

func (r *AppointmentsRepo) InsertAppointment(ctx context.Context, appointment *model.Appointment) (primitive.ObjectID, error) {
	timer := middleware.TrackDBOperation("insert", "appointments")
	defer timer.ObserveDuration()

	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	result, err := r.MongoCollection.InsertOne(ctx, appointment)
	if err != nil {
		middleware.TrackError("db")
		return primitive.NilObjectID, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *AppointmentsRepo) ListByEmail(ctx context.Context, email string) ([]*model.Appointment, error) {
	timer := middleware.TrackDBOperation("find", "appointments")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"userId": email}, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []*model.Appointment
	if err = cursor.All(ctx, &appointments); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentsRepo) ListUpcoming(ctx context.Context, email string, limit int64) ([]*model.Appointment, error) {
	timer := middleware.TrackDBOperation("find", "appointments")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}}).SetLimit(limit)

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"userId": email}, opts)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []*model.Appointment
	if err = cursor.All(ctx, &appointments); err != nil {
		middleware.TrackError("db")
		return nil, err
	}
	return appointments, nil
}

// DeleteAppointment removes an appointment only if it belongs to the caller.
func (r *AppointmentsRepo) DeleteAppointment(ctx context.Context, id primitive.ObjectID, email string) error {
	timer := middleware.TrackDBOperation("delete", "appointments")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id, "userId": email})
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ApproveAppointment flips a pending appointment to confirmed.
func (r *AppointmentsRepo) ApproveAppointment(ctx context.Context, id primitive.ObjectID, email string) error {
	timer := middleware.TrackDBOperation("update", "appointments")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"status":    model.AppointmentConfirmed,
		"updatedAt": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id, "userId": email}, update)
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	if result.ModifiedCount == 0 {
		return ErrNoChange
	}
	return nil
}
