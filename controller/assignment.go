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

type AssignmentController struct {
	store store.Store
}

func NewAssignmentController(s store.Store) *AssignmentController {
	return &AssignmentController{store: s}
}

func (ac *AssignmentController) HandleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var assignment model.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := ac.CreateAssignment(r.Context(), assignment)
	if err != nil {
		log.Error().Err(err).Msg("create assignment failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create assignment")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

// CreateAssignment starts the submission counter at zero, whatever the
// caller supplied.
func (ac *AssignmentController) CreateAssignment(ctx context.Context, assignment model.Assignment) (primitive.ObjectID, error) {
	assignment.SubmissionCount = 0
	assignment.CreatedAt = time.Now().UTC()
	return ac.store.Insert(ctx, store.Assignments, assignment)
}

func (ac *AssignmentController) HandleListByClass(w http.ResponseWriter, r *http.Request) {
	classId, err := primitive.ObjectIDFromHex(chi.URLParam(r, "classId"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	assignments, err := ac.ListByClass(r.Context(), classId)
	if err != nil {
		log.Error().Err(err).Msg("list assignments failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get assignments")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, assignments)
}

func (ac *AssignmentController) ListByClass(ctx context.Context, classId primitive.ObjectID) ([]model.Assignment, error) {
	assignments := []model.Assignment{}
	if err := ac.store.FindMany(ctx, store.Assignments, bson.M{"classId": classId}, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}
