package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edu-manage/model"
	"edu-manage/store"
	"edu-manage/util"
)

type PartnerController struct {
	store store.Store
}

func NewPartnerController(s store.Store) *PartnerController {
	return &PartnerController{store: s}
}

func (pc *PartnerController) HandleCreatePartner(w http.ResponseWriter, r *http.Request) {
	var partner model.Partner
	if err := json.NewDecoder(r.Body).Decode(&partner); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := pc.CreatePartner(r.Context(), partner)
	if err != nil {
		log.Error().Err(err).Msg("create partner failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to add partner")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

func (pc *PartnerController) CreatePartner(ctx context.Context, partner model.Partner) (primitive.ObjectID, error) {
	return pc.store.Insert(ctx, store.Partners, partner)
}

func (pc *PartnerController) HandleListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := pc.ListPartners(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list partners failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get partners")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, partners)
}

func (pc *PartnerController) ListPartners(ctx context.Context) ([]model.Partner, error) {
	partners := []model.Partner{}
	if err := pc.store.FindMany(ctx, store.Partners, bson.M{}, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}
