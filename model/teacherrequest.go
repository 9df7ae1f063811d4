package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recognized teacher request statuses. Writes are not restricted to
// these values; see the status update handler.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

type TeacherRequest struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserId      primitive.ObjectID `json:"userId" bson:"userId"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Experience  string             `json:"experience" bson:"experience"`
	Title       string             `json:"title" bson:"title"`
	Category    string             `json:"category" bson:"category"`
	Status      string             `json:"status" bson:"status"`
	SubmittedAt time.Time          `json:"submittedAt" bson:"submittedAt"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}
