package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/store"
)

var validate = validator.New()

// errEmptyPatch rejects patch bodies with nothing to set before they
// reach the store as an empty $set.
var errEmptyPatch = errors.New("no updatable fields in request body")

// InsertResponse mirrors the insert acknowledgment the API has always
// returned to creation requests.
type InsertResponse struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedId   primitive.ObjectID `json:"insertedId"`
}

func insertResponse(id primitive.ObjectID) InsertResponse {
	return InsertResponse{Acknowledged: true, InsertedId: id}
}

// UpdateResponse mirrors the update acknowledgment shape.
type UpdateResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func updateResponse(res store.UpdateResult) UpdateResponse {
	return UpdateResponse{Acknowledged: true, MatchedCount: res.Matched, ModifiedCount: res.Modified}
}
