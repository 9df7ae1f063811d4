package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClassId     primitive.ObjectID `json:"classId" bson:"classId"`
	StudentId   primitive.ObjectID `json:"studentId,omitempty" bson:"studentId,omitempty"`
	Description string             `json:"description" bson:"description"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
