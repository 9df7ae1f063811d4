package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Role      string             `json:"role" bson:"role"`
	PhotoURL  string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// UserPatch lists the fields PATCH /users/:id may change. Email is the
// natural key and role has its own route, so neither is patchable here.
type UserPatch struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
	Phone    *string `json:"phone"`
}

func (p UserPatch) Set() bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.PhotoURL != nil {
		set["photoURL"] = *p.PhotoURL
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	return set
}

type RoleUpdate struct {
	Role string `json:"role" validate:"required"`
}
