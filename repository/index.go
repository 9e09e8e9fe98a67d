package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("user_email_unique").
				SetUnique(true),
		},
	}

	analysisIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("user_analyses_date"),
		},
	}

	// The unique key backs the single-operation upsert of the daily record.
	completionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("user_day_unique").
				SetUnique(true),
		},
	}

	templateIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().
				SetName("user_template_unique").
				SetUnique(true),
		},
	}

	appointmentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("user_appointments_date"),
		},
	}

	medicationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("user_medication_logs_date"),
		},
	}

	reminderIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "dueDate", Value: 1},
			},
			Options: options.Index().SetName("user_reminders_due"),
		},
	}

	communityIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	}

	for collection, indexes := range map[string][]mongo.IndexModel{
		"users":              userIndexes,
		"skinAnalyses":       analysisIndexes,
		"routineCompletions": completionIndexes,
		"routineTemplates":   templateIndexes,
		"appointments":       appointmentIndexes,
		"medicationLogs":     medicationIndexes,
		"reminders":          reminderIndexes,
		"tips":               communityIndexes,
		"successStories":     communityIndexes,
	} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
