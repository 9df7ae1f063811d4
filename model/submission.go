package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Submission struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentId    primitive.ObjectID `json:"studentId" bson:"studentId"`
	AssignmentId primitive.ObjectID `json:"assignmentId" bson:"assignmentId"`
	Content      string             `json:"content" bson:"content"`
	SubmittedAt  time.Time          `json:"submittedAt" bson:"submittedAt"`
}
