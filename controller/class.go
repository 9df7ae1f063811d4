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

type ClassController struct {
	store store.Store
}

func NewClassController(s store.Store) *ClassController {
	return &ClassController{store: s}
}

func (cc *ClassController) HandleCreateClass(w http.ResponseWriter, r *http.Request) {
	var class model.Class
	if err := json.NewDecoder(r.Body).Decode(&class); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := cc.CreateClass(r.Context(), class)
	if err != nil {
		log.Error().Err(err).Msg("create class failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create class")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

// CreateClass starts every class pending with a zero enrollment
// counter, whatever the caller supplied for either field.
func (cc *ClassController) CreateClass(ctx context.Context, class model.Class) (primitive.ObjectID, error) {
	class.Status = model.ClassPending
	class.TotalEnrollment = 0
	class.CreatedAt = time.Now().UTC()
	return cc.store.Insert(ctx, store.Classes, class)
}

func (cc *ClassController) HandleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := cc.ListApprovedClasses(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list classes failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get classes")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, classes)
}

// ListApprovedClasses is the public listing: only approved classes
// appear. Pending and rejected classes stay reachable by id.
func (cc *ClassController) ListApprovedClasses(ctx context.Context) ([]model.Class, error) {
	classes := []model.Class{}
	if err := cc.store.FindMany(ctx, store.Classes, bson.M{"status": model.ClassApproved}, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (cc *ClassController) HandleGetClass(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	class, err := cc.GetClass(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "Class not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get class failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get class")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, class)
}

func (cc *ClassController) GetClass(ctx context.Context, id primitive.ObjectID) (model.Class, error) {
	var class model.Class
	err := cc.store.FindOne(ctx, store.Classes, bson.M{"_id": id}, &class)
	return class, err
}

func (cc *ClassController) HandleUpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	var patch model.ClassPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := cc.UpdateClass(r.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "Class not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("update class failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update class")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, updateResponse(res))
}

// UpdateClass merges the patch fields and stamps updatedAt. The status
// field takes any admin-supplied string; the counter cannot be touched
// through this path.
func (cc *ClassController) UpdateClass(ctx context.Context, id primitive.ObjectID, patch model.ClassPatch) (store.UpdateResult, error) {
	set := patch.Set()
	set["updatedAt"] = time.Now().UTC()

	res, err := cc.store.UpdateOne(ctx, store.Classes, bson.M{"_id": id}, set)
	if err != nil {
		return res, err
	}
	if res.Matched == 0 {
		return res, store.ErrNotFound
	}
	return res, nil
}

func (cc *ClassController) HandleDeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	err = cc.DeleteClass(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "Class not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("delete class failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete class")
		return
	}

	response := struct {
		Message string `json:"message"`
	}{Message: "Class deleted"}
	util.WriteSuccessResponse(w, http.StatusOK, response)
}

func (cc *ClassController) DeleteClass(ctx context.Context, id primitive.ObjectID) error {
	removed, err := cc.store.DeleteOne(ctx, store.Classes, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !removed {
		return store.ErrNotFound
	}
	return nil
}
