package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/model"
	"edu-manage/store"
	"edu-manage/util"
)

type FeedbackController struct {
	store store.Store
}

func NewFeedbackController(s store.Store) *FeedbackController {
	return &FeedbackController{store: s}
}

func (fc *FeedbackController) HandleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback model.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := fc.CreateFeedback(r.Context(), feedback)
	if err != nil {
		log.Error().Err(err).Msg("create feedback failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

func (fc *FeedbackController) CreateFeedback(ctx context.Context, feedback model.Feedback) (primitive.ObjectID, error) {
	feedback.CreatedAt = time.Now().UTC()
	return fc.store.Insert(ctx, store.Feedback, feedback)
}

func (fc *FeedbackController) HandleListFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := fc.ListFeedback(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list feedback failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get feedback")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, feedback)
}

func (fc *FeedbackController) ListFeedback(ctx context.Context) ([]model.Feedback, error) {
	feedback := []model.Feedback{}
	if err := fc.store.FindMany(ctx, store.Feedback, bson.M{}, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
