package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recognized class statuses. Only "approved" classes appear in the
// public listing.
const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassRejected = "rejected"
)

type Class struct {
	Id              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TeacherId       primitive.ObjectID `json:"teacherId,omitempty" bson:"teacherId,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email"`
	Price           float64            `json:"price" bson:"price"`
	Description     string             `json:"description" bson:"description"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Status          string             `json:"status" bson:"status"`
	TotalEnrollment int64              `json:"totalEnrollment" bson:"totalEnrollment"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ClassPatch lists the fields PATCH /classes/:id may change.
// totalEnrollment is deliberately absent: the counter is owned by the
// enrollment flow and cannot be overwritten through a patch.
type ClassPatch struct {
	Title       *string  `json:"title"`
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Status      *string  `json:"status"`
}

func (p ClassPatch) Set() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Image != nil {
		set["image"] = *p.Image
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	return set
}
