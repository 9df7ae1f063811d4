package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/model"
	"edu-manage/store"
)

func TestListApprovedOnly(t *testing.T) {
	cc := NewClassController(store.NewInMem())
	ctx := context.Background()

	id, err := cc.CreateClass(ctx, model.Class{Title: "Go 101", Email: "teacher@x.com"})
	require.NoError(t, err)

	// pending classes are absent from the public listing
	classes, err := cc.ListApprovedClasses(ctx)
	require.NoError(t, err)
	require.Empty(t, classes)

	// but still reachable by id
	class, err := cc.GetClass(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.ClassPending, class.Status)
	require.Equal(t, int64(0), class.TotalEnrollment)

	status := model.ClassApproved
	_, err = cc.UpdateClass(ctx, id, model.ClassPatch{Status: &status})
	require.NoError(t, err)

	classes, err = cc.ListApprovedClasses(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	require.Equal(t, "Go 101", classes[0].Title)
	require.False(t, classes[0].UpdatedAt.IsZero())
}

func TestUpdateClassNotFound(t *testing.T) {
	cc := NewClassController(store.NewInMem())

	status := model.ClassApproved
	_, err := cc.UpdateClass(context.Background(), primitive.NewObjectID(), model.ClassPatch{Status: &status})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateClassPreservesCounter(t *testing.T) {
	s := store.NewInMem()
	cc := NewClassController(s)
	ec := NewEnrollmentController(s)
	ctx := context.Background()

	id, err := cc.CreateClass(ctx, model.Class{Title: "Go 101"})
	require.NoError(t, err)

	_, err = ec.Enroll(ctx, model.Enrollment{StudentId: primitive.NewObjectID(), ClassId: id})
	require.NoError(t, err)

	// a patch cannot reach totalEnrollment
	status := model.ClassApproved
	title := "Go 102"
	_, err = cc.UpdateClass(ctx, id, model.ClassPatch{Status: &status, Title: &title})
	require.NoError(t, err)

	class, err := cc.GetClass(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(1), class.TotalEnrollment)
	require.Equal(t, "Go 102", class.Title)
}

func TestDeleteClassTwice(t *testing.T) {
	cc := NewClassController(store.NewInMem())
	ctx := context.Background()

	id, err := cc.CreateClass(ctx, model.Class{Title: "Go 101"})
	require.NoError(t, err)

	require.NoError(t, cc.DeleteClass(ctx, id))
	require.ErrorIs(t, cc.DeleteClass(ctx, id), store.ErrNotFound)
}
