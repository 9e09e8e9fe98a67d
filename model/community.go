package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Tip struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	UserName   string             `bson:"userName" json:"userName"`
	OwnerEmail string             `bson:"ownerEmail" json:"-"`
	Content    string             `bson:"content" json:"content"`
	Likes      int                `bson:"likes" json:"likes"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type SuccessStory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	UserName   string             `bson:"userName" json:"userName"`
	OwnerEmail string             `bson:"ownerEmail" json:"-"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Content    string             `bson:"content" json:"content"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type CommunityStats struct {
	ActiveMembers  int64 `json:"activeMembers"`
	TipsShared     int64 `json:"tipsShared"`
	SuccessStories int64 `json:"successStories"`
}
