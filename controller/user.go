package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

type UserController struct {
	store store.Store
}

func NewUserController(s store.Store) *UserController {
	return &UserController{store: s}
}

func (uc *UserController) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := uc.CreateUser(r.Context(), user)
	if errors.Is(err, store.ErrDuplicateKey) {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Email already exists")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("create user failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, insertResponse(id))
}

func (uc *UserController) CreateUser(ctx context.Context, user model.User) (primitive.ObjectID, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	return uc.store.Insert(ctx, store.Users, user)
}

func (uc *UserController) HandleSearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.SearchUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		log.Error().Err(err).Msg("user search failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	log.Info().Int("count", len(users)).Msg("sending users")
	util.WriteSuccessResponse(w, http.StatusOK, users)
}

// SearchUsers matches the term case-insensitively against name or
// email. An empty term matches every user.
func (uc *UserController) SearchUsers(ctx context.Context, term string) ([]model.User, error) {
	regex := primitive.Regex{Pattern: term, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": regex},
		{"email": regex},
	}}

	users := []model.User{}
	if err := uc.store.FindMany(ctx, store.Users, filter, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (uc *UserController) HandleGetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := uc.GetUserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get user failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, user)
}

func (uc *UserController) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := uc.store.FindOne(ctx, store.Users, bson.M{"email": email}, &user)
	return user, err
}

func (uc *UserController) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var patch model.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := uc.UpdateUser(r.Context(), id, patch)
	if errors.Is(err, errEmptyPatch) {
		util.WriteErrorResponse(w, http.StatusBadRequest, errEmptyPatch.Error())
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("update user failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, updateResponse(res))
}

// UpdateUser applies the patch's set fields. A patch with nothing to
// set is rejected rather than sent to the store as an empty $set.
func (uc *UserController) UpdateUser(ctx context.Context, id primitive.ObjectID, patch model.UserPatch) (store.UpdateResult, error) {
	set := patch.Set()
	if len(set) == 0 {
		return store.UpdateResult{}, errEmptyPatch
	}

	res, err := uc.store.UpdateOne(ctx, store.Users, bson.M{"_id": id}, set)
	if err != nil {
		return res, err
	}
	if res.Matched == 0 {
		return res, store.ErrNotFound
	}
	return res, nil
}

func (uc *UserController) HandleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req model.RoleUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		util.WriteErrorResponse(w, http.StatusBadRequest, "Role is required in request body.")
		return
	}

	err := uc.UpdateUserRole(r.Context(), email, req.Role)
	if errors.Is(err, store.ErrNotFound) {
		util.WriteErrorResponse(w, http.StatusNotFound, "User not found or role not changed.")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("update role failed")
		util.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update user role")
		return
	}

	response := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: true, Message: fmt.Sprintf("Role updated to %s", req.Role)}
	util.WriteSuccessResponse(w, http.StatusOK, response)
}

// UpdateUserRole sets the role by email. An absent user and a role
// that already had the requested value both surface as ErrNotFound;
// the two cases are not distinguished.
func (uc *UserController) UpdateUserRole(ctx context.Context, email, role string) error {
	res, err := uc.store.UpdateOne(ctx, store.Users, bson.M{"email": email}, bson.M{"role": role})
	if err != nil {
		return err
	}
	if res.Modified == 0 {
		return store.ErrNotFound
	}
	return nil
}
