package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	Users           = "users"
	TeacherRequests = "teacherRequests"
	Classes         = "classes"
	Enrollments     = "enrollments"
	Assignments     = "assignments"
	Submissions     = "submissions"
	Feedback        = "feedback"
	Partners        = "partners"
)

type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Store is the collection-scoped access layer shared by every
// controller. It is safe for concurrent use; IncrementField is the
// only atomic read-modify-write primitive and is what keeps the
// derived counters correct under concurrent writers.
type Store interface {
	// Insert assigns an id and returns it. Violating a unique
	// constraint (users.email) yields ErrDuplicateKey.
	Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)

	// FindOne decodes the first match into out, or returns ErrNotFound.
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error

	// FindMany decodes all matches into out, a pointer to a slice.
	// Result order is unspecified.
	FindMany(ctx context.Context, collection string, filter bson.M, out interface{}) error

	// UpdateOne applies a $set merge to the first match and reports how
	// many documents matched and how many actually changed.
	UpdateOne(ctx context.Context, collection string, filter, set bson.M) (UpdateResult, error)

	// IncrementField atomically adds delta to a numeric field of the
	// first match. A filter that matches nothing is a no-op, not an
	// error.
	IncrementField(ctx context.Context, collection string, filter bson.M, field string, delta int) error

	// DeleteOne reports whether a document was removed.
	DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error)

	Close(ctx context.Context) error
}
