package handlers

import (
	"context"
	"net/http"

	"github.com/BradenHooton/gardenbook/internal/auth"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
	pkghttp "github.com/BradenHooton/gardenbook/pkg/http"
)

// AuthServiceInterface defines the interface for auth business logic
type AuthServiceInterface interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthToken, error)
	VerifyEmail(ctx context.Context, email, code string) (*models.AuthToken, error)
	ResendCode(ctx context.Context, email string) (string, error)
	GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Request DTOs

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	Status   string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest represents the request body for email verification
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// ResendCodeRequest represents the request body for resending a verification code
type ResendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Register handles user registration
// @Summary User registration
// @Accept json
// @Param request body RegisterRequest true "Register request"
// @Produce json
// @Success 201 {object} services.RegisterResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	res, err := h.service.Register(r.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, res)
}

// Login handles user login
// @Summary User login
// @Accept json
// @Param request body LoginRequest true "Login request"
// @Produce json
// @Success 200 {object} models.AuthToken
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, token)
}

// VerifyEmail handles verification code submission
// @Summary Verify email with code
// @Accept json
// @Param request body VerifyEmailRequest true "Verification request"
// @Produce json
// @Success 200 {object} models.AuthToken
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req VerifyEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	token, err := h.service.VerifyEmail(r.Context(), req.Email, req.Code)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, token)
}

// ResendCode issues a fresh verification code
// @Summary Resend verification code
// @Accept json
// @Param request body ResendCodeRequest true "Resend request"
// @Produce json
// @Success 200 {object} pkghttp.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/resend-code [post]
func (h *AuthHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req ResendCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	msg, err := h.service.ResendCode(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pkghttp.WriteMessage(w, http.StatusOK, msg)
}

// Me returns the authenticated user's profile
// @Summary Current user profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err, "User not found")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, profile)
}
