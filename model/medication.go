package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MedicationLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	MedicationName string             `bson:"medicationName" json:"medicationName"`
	Dosage         string             `bson:"dosage" json:"dosage"`
	Time           string             `bson:"time" json:"time"`
	Notes          string             `bson:"notes" json:"notes"`
	Date           time.Time          `bson:"date" json:"date"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type MedicationSchedule struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Dosage    string             `bson:"dosage" json:"dosage"`
	Time      string             `bson:"time" json:"time"`
	Frequency string             `bson:"frequency" json:"frequency"`
}
