package controller

import (
	"context"
	"encoding/json"
	"errors"
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

type TeacherRequestController struct {
	store store.Store
}

func NewTeacherRequestController(s store.Store) *TeacherRequestController {
	return &TeacherRequestController{store: s}
}

func (tc *TeacherRequestController) HandleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var request model.TeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := tc.CreateRequest(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("create teacher request failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create teacher request")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

// CreateRequest always starts the request pending, whatever status the
// caller supplied.
func (tc *TeacherRequestController) CreateRequest(ctx context.Context, request model.TeacherRequest) (primitive.ObjectID, error) {
	request.Status = model.RequestPending
	request.SubmittedAt = time.Now().UTC()
	return tc.store.Insert(ctx, store.TeacherRequests, request)
}

func (tc *TeacherRequestController) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := tc.ListRequests(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list teacher requests failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get teacher requests")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, requests)
}

func (tc *TeacherRequestController) ListRequests(ctx context.Context) ([]model.TeacherRequest, error) {
	requests := []model.TeacherRequest{}
	if err := tc.store.FindMany(ctx, store.TeacherRequests, bson.M{}, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (tc *TeacherRequestController) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var update model.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := tc.SetRequestStatus(r.Context(), id, update.Status)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "Request not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("update teacher request failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update teacher request")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, updateResponse(res))
}

// SetRequestStatus overwrites the status and stamps updatedAt. Any
// status string is accepted; the recognized values are the model
// Request* constants, but nothing rejects values outside that set.
// The previous status is not retained.
func (tc *TeacherRequestController) SetRequestStatus(ctx context.Context, id primitive.ObjectID, status string) (store.UpdateResult, error) {
	set := bson.M{"status": status, "updatedAt": time.Now().UTC()}
	res, err := tc.store.UpdateOne(ctx, store.TeacherRequests, bson.M{"_id": id}, set)
	if err != nil {
		return res, err
	}
	if res.Matched == 0 {
		return res, store.ErrNotFound
	}
	return res, nil
}
