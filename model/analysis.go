package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Condition is one entry from the vision model's ===CONDITIONS=== section.
// Confidence is whatever integer the model produced; it is not range-checked.
type Condition struct {
	Name       string `bson:"name" json:"name"`
	Confidence int    `bson:"confidence" json:"confidence"`
}

// AnalysisResult is the parsed form of one vision-model response.
type AnalysisResult struct {
	Conditions      []Condition `bson:"conditions" json:"conditions"`
	Recommendations []string    `bson:"recommendations" json:"recommendations"`
	UrgentNotes     []string    `bson:"urgent_notes" json:"urgent_notes"`
	RawResponse     string      `bson:"raw_response" json:"raw_response"`
}

// SkinAnalysis is the persisted record of a completed analysis.
type SkinAnalysis struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Conditions      []Condition        `bson:"conditions" json:"conditions"`
	Recommendations []string           `bson:"recommendations" json:"recommendations"`
	UrgentNotes     []string           `bson:"urgent_notes" json:"urgent_notes"`
	RawResponse     string             `bson:"raw_response" json:"-"`
	Score           int                `bson:"score" json:"score"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
