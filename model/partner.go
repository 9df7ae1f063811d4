package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Partner struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Logo        string             `json:"logo" bson:"logo"`
	Description string             `json:"description" bson:"description"`
}
