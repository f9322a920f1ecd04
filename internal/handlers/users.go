package handlers

import (
	"context"
	"net/http"

	"github.com/BradenHooton/gardenbook/internal/auth"
	"github.com/BradenHooton/gardenbook/internal/models"
	pkghttp "github.com/BradenHooton/gardenbook/pkg/http"
)

// UserService defines the interface for account administration
type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	DeleteUser(ctx context.Context, actorID, id int64) error
}

// UserHandler handles administrator user management requests
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsersResponse represents a list of users
type ListUsersResponse struct {
	Data  []models.UserProfile `json:"data"`
	Total int                  `json:"total"`
}

// ListUsers returns every user, newest first
//
// @Summary List users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ListUsersResponse{Data: users, Total: len(users)})
}

// DeleteUser removes a user and its verification codes
//
// @Summary Delete user
// @Security BearerAuth
// @Param id path int true "User ID"
// @Produce json
// @Success 200 {object} pkghttp.MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	var actorID int64
	if claims := auth.GetUserFromContext(r); claims != nil {
		actorID = claims.UserID
	}

	if err := h.service.DeleteUser(r.Context(), actorID, id); err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pkghttp.WriteMessage(w, http.StatusOK, "User deleted successfully")
}
