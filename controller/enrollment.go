package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/model"
	"edu-manage/store"
	"edu-manage/util"
)

type EnrollmentController struct {
	store store.Store
}

func NewEnrollmentController(s store.Store) *EnrollmentController {
	return &EnrollmentController{store: s}
}

func (ec *EnrollmentController) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	var enrollment model.Enrollment
	if err := json.NewDecoder(r.Body).Decode(&enrollment); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := ec.Enroll(r.Context(), enrollment)
	if err != nil {
		log.Error().Err(err).Msg("enroll failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

// Enroll stamps and inserts the enrollment, then bumps the class
// counter with the store's atomic increment. The two steps are not a
// transaction: if the increment fails after the insert, the enrollment
// is kept and the counter lags until reconciled from the enrollments
// collection. There is no compensating delete.
func (ec *EnrollmentController) Enroll(ctx context.Context, enrollment model.Enrollment) (primitive.ObjectID, error) {
	enrollment.EnrolledAt = time.Now().UTC()
	enrollment.PaymentStatus = model.PaymentPaid

	id, err := ec.store.Insert(ctx, store.Enrollments, enrollment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	filter := bson.M{"_id": enrollment.ClassId}
	if err := ec.store.IncrementField(ctx, store.Classes, filter, "totalEnrollment", 1); err != nil {
		return id, err
	}
	return id, nil
}

func (ec *EnrollmentController) HandleListByStudent(w http.ResponseWriter, r *http.Request) {
	studentId, err := primitive.ObjectIDFromHex(chi.URLParam(r, "studentId"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid student ID")
		return
	}

	enrollments, err := ec.ListByStudent(r.Context(), studentId)
	if err != nil {
		log.Error().Err(err).Msg("list enrollments failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get enrollments")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, enrollments)
}

func (ec *EnrollmentController) ListByStudent(ctx context.Context, studentId primitive.ObjectID) ([]model.Enrollment, error) {
	enrollments := []model.Enrollment{}
	if err := ec.store.FindMany(ctx, store.Enrollments, bson.M{"studentId": studentId}, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}
