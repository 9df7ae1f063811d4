package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on a MongoDB database. One client is opened
// at process start and passed down; there is no package-level handle.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "store: connect")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "store: ping")
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// EnsureIndexes creates the unique index on users.email plus the
// lookup indexes. Only the email index carries a correctness
// contract; the rest are performance hints.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(Users).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "store: users email index")
	}

	lookups := []struct {
		collection string
		keys       bson.D
	}{
		{TeacherRequests, bson.D{{Key: "userId", Value: 1}}},
		{Classes, bson.D{{Key: "teacherId", Value: 1}}},
		{Enrollments, bson.D{{Key: "studentId", Value: 1}}},
		{Assignments, bson.D{{Key: "classId", Value: 1}}},
		{Submissions, bson.D{{Key: "assignmentId", Value: 1}, {Key: "studentId", Value: 1}}},
		{Feedback, bson.D{{Key: "classId", Value: 1}}},
	}
	for _, l := range lookups {
		if _, err := m.db.Collection(l.collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: l.keys}); err != nil {
			return errors.Wrapf(err, "store: %s index", l.collection)
		}
	}
	log.Info().Msg("mongo indexes ensured")
	return nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateKey
		}
		return primitive.NilObjectID, errors.Wrapf(err, "store: insert into %s", collection)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "store: find one in %s", collection)
	}
	return nil
}

func (m *Mongo) FindMany(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cursor, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return errors.Wrapf(err, "store: find in %s", collection)
	}
	if err := cursor.All(ctx, out); err != nil {
		return errors.Wrapf(err, "store: decode %s results", collection)
	}
	return nil
}

func (m *Mongo) UpdateOne(ctx context.Context, collection string, filter, set bson.M) (UpdateResult, error) {
	res, err := m.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, errors.Wrapf(err, "store: update in %s", collection)
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (m *Mongo) IncrementField(ctx context.Context, collection string, filter bson.M, field string, delta int) error {
	_, err := m.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return errors.Wrapf(err, "store: increment %s.%s", collection, field)
	}
	return nil
}

func (m *Mongo) DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error) {
	res, err := m.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return false, errors.Wrapf(err, "store: delete in %s", collection)
	}
	return res.DeletedCount > 0, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
