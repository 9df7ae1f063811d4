package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/model"
	"edu-manage/store"
)

func TestSubmissionIncrementsCounter(t *testing.T) {
	s := store.NewInMem()
	ac := NewAssignmentController(s)
	sc := NewSubmissionController(s)
	ctx := context.Background()

	classId := primitive.NewObjectID()
	assignmentId, err := ac.CreateAssignment(ctx, model.Assignment{ClassId: classId, Title: "HW 1"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := sc.Submit(ctx, model.Submission{
			StudentId:    primitive.NewObjectID(),
			AssignmentId: assignmentId,
			Content:      "answer",
		})
		require.NoError(t, err)
	}

	assignments, err := ac.ListByClass(ctx, classId)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, int64(2), assignments[0].SubmissionCount)
}

func TestCreateAssignmentResetsCounter(t *testing.T) {
	s := store.NewInMem()
	ac := NewAssignmentController(s)
	ctx := context.Background()

	classId := primitive.NewObjectID()
	// a caller-supplied count is ignored
	_, err := ac.CreateAssignment(ctx, model.Assignment{ClassId: classId, Title: "HW 1", SubmissionCount: 99})
	require.NoError(t, err)

	assignments, err := ac.ListByClass(ctx, classId)
	require.NoError(t, err)
	require.Equal(t, int64(0), assignments[0].SubmissionCount)
	require.False(t, assignments[0].CreatedAt.IsZero())
}

func TestListSubmissionsFiltered(t *testing.T) {
	s := store.NewInMem()
	sc := NewSubmissionController(s)
	ctx := context.Background()

	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	hw1 := primitive.NewObjectID()
	hw2 := primitive.NewObjectID()

	seed := []model.Submission{
		{StudentId: alice, AssignmentId: hw1},
		{StudentId: alice, AssignmentId: hw2},
		{StudentId: bob, AssignmentId: hw1},
	}
	for _, sub := range seed {
		_, err := s.Insert(ctx, store.Submissions, sub)
		require.NoError(t, err)
	}

	// no filters: full scan
	all, err := sc.ListSubmissions(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byStudent, err := sc.ListSubmissions(ctx, &alice, nil)
	require.NoError(t, err)
	require.Len(t, byStudent, 2)

	byAssignment, err := sc.ListSubmissions(ctx, nil, &hw1)
	require.NoError(t, err)
	require.Len(t, byAssignment, 2)

	both, err := sc.ListSubmissions(ctx, &alice, &hw1)
	require.NoError(t, err)
	require.Len(t, both, 1)
}

func TestSubmitStampsTime(t *testing.T) {
	s := store.NewInMem()
	sc := NewSubmissionController(s)
	ctx := context.Background()

	id, err := sc.Submit(ctx, model.Submission{
		StudentId:    primitive.NewObjectID(),
		AssignmentId: primitive.NewObjectID(),
		Content:      "answer",
	})
	require.NoError(t, err)

	var got model.Submission
	require.NoError(t, s.FindOne(ctx, store.Submissions, bson.M{"_id": id}, &got))
	require.False(t, got.SubmittedAt.IsZero())
	require.Equal(t, "answer", got.Content)
}
