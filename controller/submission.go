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

type SubmissionController struct {
	store store.Store
}

func NewSubmissionController(s store.Store) *SubmissionController {
	return &SubmissionController{store: s}
}

func (sc *SubmissionController) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var submission model.Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := sc.Submit(r.Context(), submission)
	if err != nil {
		log.Error().Err(err).Msg("submit failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to submit assignment")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

// Submit inserts the submission, then bumps the assignment counter
// with the store's atomic increment. Same shape as enrolling: the two
// steps are not a transaction and an increment failure leaves the
// submission in place with a lagging counter.
func (sc *SubmissionController) Submit(ctx context.Context, submission model.Submission) (primitive.ObjectID, error) {
	submission.SubmittedAt = time.Now().UTC()

	id, err := sc.store.Insert(ctx, store.Submissions, submission)
	if err != nil {
		return primitive.NilObjectID, err
	}

	filter := bson.M{"_id": submission.AssignmentId}
	if err := sc.store.IncrementField(ctx, store.Assignments, filter, "submissionCount", 1); err != nil {
		return id, err
	}
	return id, nil
}

func (sc *SubmissionController) HandleListSubmissions(w http.ResponseWriter, r *http.Request) {
	var studentId, assignmentId *primitive.ObjectID

	if raw := r.URL.Query().Get("studentId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid student ID")
			return
		}
		studentId = &id
	}
	if raw := r.URL.Query().Get("assignmentId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid assignment ID")
			return
		}
		assignmentId = &id
	}

	submissions, err := sc.ListSubmissions(r.Context(), studentId, assignmentId)
	if err != nil {
		log.Error().Err(err).Msg("list submissions failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get submissions")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, submissions)
}

// ListSubmissions filters by either id when given. Both nil returns
// every submission; there is no pagination.
func (sc *SubmissionController) ListSubmissions(ctx context.Context, studentId, assignmentId *primitive.ObjectID) ([]model.Submission, error) {
	filter := bson.M{}
	if studentId != nil {
		filter["studentId"] = *studentId
	}
	if assignmentId != nil {
		filter["assignmentId"] = *assignmentId
	}

	submissions := []model.Submission{}
	if err := sc.store.FindMany(ctx, store.Submissions, filter, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
