package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name" validate:"required,min=2,max=60"`
	Email               string             `bson:"email" json:"email" validate:"required,email"`
	Password            string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	OnboardingCompleted bool               `bson:"onboardingCompleted" json:"onboardingCompleted"`
	Profile             *SkinProfile       `bson:"profile,omitempty" json:"profile,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SkinProfile holds the onboarding questionnaire answers.
type SkinProfile struct {
	SkinType    string   `bson:"skinType" json:"skinType"`
	Concerns    []string `bson:"concerns" json:"concerns"`
	Sensitivity string   `bson:"sensitivity" json:"sensitivity"`
	Location    string   `bson:"location" json:"location"`
	Routine     []string `bson:"routine" json:"routine"`
}
