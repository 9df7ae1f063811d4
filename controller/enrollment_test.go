package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/model"
	"edu-manage/store"
)

func TestEnrollmentIncrementsCounter(t *testing.T) {
	s := store.NewInMem()
	cc := NewClassController(s)
	ec := NewEnrollmentController(s)
	ctx := context.Background()

	classId, err := cc.CreateClass(ctx, model.Class{Title: "Go 101"})
	require.NoError(t, err)

	students := []primitive.ObjectID{
		primitive.NewObjectID(),
		primitive.NewObjectID(),
		primitive.NewObjectID(),
	}
	for _, studentId := range students {
		_, err := ec.Enroll(ctx, model.Enrollment{StudentId: studentId, ClassId: classId})
		require.NoError(t, err)
	}

	class, err := cc.GetClass(ctx, classId)
	require.NoError(t, err)
	require.Equal(t, int64(len(students)), class.TotalEnrollment)

	// the counter matches the enrollment documents
	enrollments, err := ec.ListByStudent(ctx, students[0])
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.Equal(t, model.PaymentPaid, enrollments[0].PaymentStatus)
	require.False(t, enrollments[0].EnrolledAt.IsZero())
}

func TestEnrollUnknownClassKeepsEnrollment(t *testing.T) {
	s := store.NewInMem()
	ec := NewEnrollmentController(s)
	ctx := context.Background()

	// referential integrity is not validated: the enrollment is stored
	// and the increment silently hits nothing
	studentId := primitive.NewObjectID()
	id, err := ec.Enroll(ctx, model.Enrollment{StudentId: studentId, ClassId: primitive.NewObjectID()})
	require.NoError(t, err)
	require.False(t, id.IsZero())

	enrollments, err := ec.ListByStudent(ctx, studentId)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
}

func TestListByStudentFiltersOthers(t *testing.T) {
	s := store.NewInMem()
	cc := NewClassController(s)
	ec := NewEnrollmentController(s)
	ctx := context.Background()

	classId, err := cc.CreateClass(ctx, model.Class{Title: "Go 101"})
	require.NoError(t, err)

	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	for _, studentId := range []primitive.ObjectID{alice, alice, bob} {
		_, err := ec.Enroll(ctx, model.Enrollment{StudentId: studentId, ClassId: classId})
		require.NoError(t, err)
	}

	enrollments, err := ec.ListByStudent(ctx, alice)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
}
