package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	Id              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ClassId         primitive.ObjectID `json:"classId" bson:"classId"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	Deadline        string             `json:"deadline" bson:"deadline"`
	SubmissionCount int64              `json:"submissionCount" bson:"submissionCount"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}
