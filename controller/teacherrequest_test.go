package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/model"
	"edu-manage/store"
)

func TestRequestLifecycle(t *testing.T) {
	tc := NewTeacherRequestController(store.NewInMem())
	ctx := context.Background()

	id, err := tc.CreateRequest(ctx, model.TeacherRequest{
		UserId:     primitive.NewObjectID(),
		Name:       "Alice",
		Email:      "alice@x.com",
		Status:     "accepted", // ignored: requests always start pending
		Experience: "3 years",
	})
	require.NoError(t, err)

	requests, err := tc.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.Equal(t, model.RequestPending, requests[0].Status)
	require.False(t, requests[0].SubmittedAt.IsZero())
	require.True(t, requests[0].UpdatedAt.IsZero())

	res, err := tc.SetRequestStatus(ctx, id, model.RequestAccepted)
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Modified)

	requests, err = tc.ListRequests(ctx)
	require.NoError(t, err)
	require.Equal(t, model.RequestAccepted, requests[0].Status)
	require.False(t, requests[0].UpdatedAt.IsZero())
}

func TestSetRequestStatusNotFound(t *testing.T) {
	tc := NewTeacherRequestController(store.NewInMem())
	ctx := context.Background()

	_, err := tc.SetRequestStatus(ctx, primitive.NewObjectID(), model.RequestAccepted)
	require.ErrorIs(t, err, store.ErrNotFound)

	// nothing was written
	requests, err := tc.ListRequests(ctx)
	require.NoError(t, err)
	require.Empty(t, requests)
}

func TestSetRequestStatusAcceptsAnyString(t *testing.T) {
	tc := NewTeacherRequestController(store.NewInMem())
	ctx := context.Background()

	id, err := tc.CreateRequest(ctx, model.TeacherRequest{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	// the status field is not validated against the recognized set
	_, err = tc.SetRequestStatus(ctx, id, "on-hold")
	require.NoError(t, err)

	requests, err := tc.ListRequests(ctx)
	require.NoError(t, err)
	require.Equal(t, "on-hold", requests[0].Status)
}
