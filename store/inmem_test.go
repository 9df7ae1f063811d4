package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDoc struct {
	Id    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Role  string             `bson:"role"`
}

func TestInsertEnforcesUniqueEmail(t *testing.T) {
	s := NewInMem()
	ctx := context.Background()

	first, err := s.Insert(ctx, Users, userDoc{Name: "Alice", Email: "alice@x.com", Role: "student"})
	require.NoError(t, err)
	require.False(t, first.IsZero())

	_, err = s.Insert(ctx, Users, userDoc{Name: "Other Alice", Email: "alice@x.com", Role: "student"})
	require.ErrorIs(t, err, ErrDuplicateKey)

	// the first document is unaffected
	var got userDoc
	require.NoError(t, s.FindOne(ctx, Users, bson.M{"_id": first}, &got))
	require.Equal(t, "Alice", got.Name)
}

func TestFindOneNotFound(t *testing.T) {
	s := NewInMem()

	var got userDoc
	err := s.FindOne(context.Background(), Users, bson.M{"email": "nobody@x.com"}, &got)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOneMatchedVsModified(t *testing.T) {
	s := NewInMem()
	ctx := context.Background()

	_, err := s.Insert(ctx, Users, userDoc{Name: "Bob", Email: "bob@x.com", Role: "student"})
	require.NoError(t, err)

	res, err := s.UpdateOne(ctx, Users, bson.M{"email": "bob@x.com"}, bson.M{"role": "teacher"})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Matched)
	require.Equal(t, int64(1), res.Modified)

	// same value again: matched but unchanged
	res, err = s.UpdateOne(ctx, Users, bson.M{"email": "bob@x.com"}, bson.M{"role": "teacher"})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Matched)
	require.Equal(t, int64(0), res.Modified)

	// no match at all
	res, err = s.UpdateOne(ctx, Users, bson.M{"email": "nobody@x.com"}, bson.M{"role": "teacher"})
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Matched)
}

func TestIncrementField(t *testing.T) {
	s := NewInMem()
	ctx := context.Background()

	type classDoc struct {
		Id              primitive.ObjectID `bson:"_id,omitempty"`
		Title           string             `bson:"title"`
		TotalEnrollment int64              `bson:"totalEnrollment"`
	}

	id, err := s.Insert(ctx, Classes, classDoc{Title: "Go 101"})
	require.NoError(t, err)

	require.NoError(t, s.IncrementField(ctx, Classes, bson.M{"_id": id}, "totalEnrollment", 1))
	require.NoError(t, s.IncrementField(ctx, Classes, bson.M{"_id": id}, "totalEnrollment", 1))

	var got classDoc
	require.NoError(t, s.FindOne(ctx, Classes, bson.M{"_id": id}, &got))
	require.Equal(t, int64(2), got.TotalEnrollment)

	// incrementing a missing document is a no-op, not an error
	require.NoError(t, s.IncrementField(ctx, Classes, bson.M{"_id": primitive.NewObjectID()}, "totalEnrollment", 1))
}

func TestDeleteOneTwice(t *testing.T) {
	s := NewInMem()
	ctx := context.Background()

	id, err := s.Insert(ctx, Classes, bson.M{"title": "Go 101"})
	require.NoError(t, err)

	removed, err := s.DeleteOne(ctx, Classes, bson.M{"_id": id})
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = s.DeleteOne(ctx, Classes, bson.M{"_id": id})
	require.NoError(t, err)
	require.False(t, removed)
}

func TestRegexFilter(t *testing.T) {
	s := NewInMem()
	ctx := context.Background()

	seed := []userDoc{
		{Name: "Alice Smith", Email: "asmith@x.com"},
		{Name: "Zed", Email: "alice@z.com"},
		{Name: "Bob", Email: "bob@y.com"},
	}
	for _, u := range seed {
		_, err := s.Insert(ctx, Users, u)
		require.NoError(t, err)
	}

	regex := primitive.Regex{Pattern: "ALICE", Options: "i"}
	filter := bson.M{"$or": []bson.M{{"name": regex}, {"email": regex}}}

	var got []userDoc
	require.NoError(t, s.FindMany(ctx, Users, filter, &got))
	require.Len(t, got, 2)

	// empty pattern matches everything
	regex = primitive.Regex{Pattern: "", Options: "i"}
	filter = bson.M{"$or": []bson.M{{"name": regex}, {"email": regex}}}
	got = nil
	require.NoError(t, s.FindMany(ctx, Users, filter, &got))
	require.Len(t, got, 3)
}
