package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoutineCompletion is one user's check-off record for a single calendar
// day. At most one exists per (userId, date); later writes for the same day
// overwrite it. The stored score is the percentage against the template in
// effect at write time and is never recomputed when the template changes.
type RoutineCompletion struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         time.Time          `bson:"date" json:"date"`
	MorningSteps []string           `bson:"morningSteps" json:"morningSteps"`
	EveningSteps []string           `bson:"eveningSteps" json:"eveningSteps"`
	Score        int                `bson:"score" json:"score"`
	Completed    bool               `bson:"completed" json:"completed"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RoutineTemplate is the user's configured step list, at most one per user.
type RoutineTemplate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Morning   []string           `bson:"morning" json:"morning"`
	Evening   []string           `bson:"evening" json:"evening"`
	Note      string             `bson:"note" json:"note"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultRoutineTemplate is returned when a user has not configured one.
func DefaultRoutineTemplate() *RoutineTemplate {
	return &RoutineTemplate{
		Morning: []string{"Cleanser", "Toner", "Serum", "Moisturizer", "Sunscreen"},
		Evening: []string{"Makeup Remover", "Cleanser", "Exfoliant", "Serum", "Moisturizer"},
	}
}
