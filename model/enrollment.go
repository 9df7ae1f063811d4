package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentPaid is stamped on every enrollment; there is no payment
// provider integration.
const PaymentPaid = "paid"

type Enrollment struct {
	Id            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentId     primitive.ObjectID `json:"studentId" bson:"studentId"`
	ClassId       primitive.ObjectID `json:"classId" bson:"classId"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`
	EnrolledAt    time.Time          `json:"enrolledAt" bson:"enrolledAt"`
}
