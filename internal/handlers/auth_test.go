package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradenHooton/gardenbook/internal/handlers"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
	pkghttp "github.com/BradenHooton/gardenbook/pkg/http"
)

func TestRegister_Success(t *testing.T) {
	var got services.RegisterInput
	handler := handlers.NewAuthHandler(&mockAuthService{
		RegisterFunc: func(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error) {
			got = in
			return &services.RegisterResult{Message: services.MsgRegistered, UserID: 12}, nil
		},
	})

	req := newTestRequest(t, http.MethodPost, "/auth/register", handlers.RegisterRequest{
		Name:     "Anvar",
		Email:    "anvar@example.com",
		Password: "secret123",
	})
	w := httptest.NewRecorder()
	handler.Register(w, req)

	var resp services.RegisterResult
	assertJSONResponse(t, w, http.StatusCreated, &resp)
	assert.Equal(t, int64(12), resp.UserID)
	assert.Equal(t, "anvar@example.com", got.Email)
	assert.Empty(t, got.Role)
}

func TestRegister_RequestedRolePassedThrough(t *testing.T) {
	var got services.RegisterInput
	handler := handlers.NewAuthHandler(&mockAuthService{
		RegisterFunc: func(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error) {
			got = in
			return &services.RegisterResult{Message: services.MsgRegistered, UserID: 3}, nil
		},
	})

	req := newTestRequest(t, http.MethodPost, "/auth/register", handlers.RegisterRequest{
		Name:     "Dilnoza",
		Email:    "dilnoza@example.com",
		Password: "secret123",
		Role:     "ADMIN",
		Status:   "INACTIVE",
	})
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ADMIN", got.Role)
	assert.Equal(t, "INACTIVE", got.Status)
}

func TestRegister_Conflict(t *testing.T) {
	handler := handlers.NewAuthHandler(&mockAuthService{})

	req := newTestRequest(t, http.MethodPost, "/auth/register", handlers.RegisterRequest{
		Name:     "Anvar",
		Email:    "anvar@example.com",
		Password: "secret123",
	})
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assertErrorResponse(t, w, http.StatusConflict, "conflict")
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  any
		field string
	}{
		{name: "missing name", body: handlers.RegisterRequest{Email: "a@example.com", Password: "secret123"}, field: "name"},
		{name: "bad email", body: handlers.RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret123"}, field: "email"},
		{name: "short password", body: handlers.RegisterRequest{Name: "A", Email: "a@example.com", Password: "123"}, field: "password"},
		{name: "unknown role", body: handlers.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123", Role: "root"}, field: "role"},
		{name: "malformed json", body: `{"name":`, field: "body"},
		{name: "unknown field", body: `{"name":"A","email":"a@example.com","password":"secret123","isVerified":true}`, field: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewAuthHandler(&mockAuthService{
				RegisterFunc: func(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error) {
					t.Fatal("service must not be called")
					return nil, nil
				},
			})

			w := httptest.NewRecorder()
			handler.Register(w, newTestRequest(t, http.MethodPost, "/auth/register", tt.body))

			resp := assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
			assert.Contains(t, resp.Details, tt.field)
		})
	}
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "bad credentials", err: models.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "unverified", err: models.ErrEmailNotVerified, wantStatus: http.StatusForbidden, wantCode: "forbidden"},
		{name: "store failure", err: models.ErrBadRequest, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewAuthHandler(&mockAuthService{
				LoginFunc: func(ctx context.Context, email, password string) (*models.AuthToken, error) {
					return nil, tt.err
				},
			})

			w := httptest.NewRecorder()
			handler.Login(w, newTestRequest(t, http.MethodPost, "/auth/login", handlers.LoginRequest{
				Email:    "user@example.com",
				Password: "secret123",
			}))

			assertErrorResponse(t, w, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	handler := handlers.NewAuthHandler(&mockAuthService{
		LoginFunc: func(ctx context.Context, email, password string) (*models.AuthToken, error) {
			return &models.AuthToken{AccessToken: "signed"}, nil
		},
	})

	w := httptest.NewRecorder()
	handler.Login(w, newTestRequest(t, http.MethodPost, "/auth/login", handlers.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	}))

	var body map[string]string
	assertJSONResponse(t, w, http.StatusOK, &body)
	assert.Equal(t, "signed", body["access_token"])
}

func TestVerifyEmail(t *testing.T) {
	t.Run("invalid code is forbidden", func(t *testing.T) {
		handler := handlers.NewAuthHandler(&mockAuthService{})

		w := httptest.NewRecorder()
		handler.VerifyEmail(w, newTestRequest(t, http.MethodPost, "/auth/verify-email", handlers.VerifyEmailRequest{
			Email: "user@example.com",
			Code:  "123456",
		}))

		resp := assertErrorResponse(t, w, http.StatusForbidden, "forbidden")
		assert.Equal(t, "Code invalid or expired", resp.Message)
	})

	t.Run("code must be six digits", func(t *testing.T) {
		handler := handlers.NewAuthHandler(&mockAuthService{})

		w := httptest.NewRecorder()
		handler.VerifyEmail(w, newTestRequest(t, http.MethodPost, "/auth/verify-email", handlers.VerifyEmailRequest{
			Email: "user@example.com",
			Code:  "12ab",
		}))

		assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
	})

	t.Run("unknown email", func(t *testing.T) {
		handler := handlers.NewAuthHandler(&mockAuthService{
			VerifyEmailFunc: func(ctx context.Context, email, code string) (*models.AuthToken, error) {
				return nil, models.ErrNotFound
			},
		})

		w := httptest.NewRecorder()
		handler.VerifyEmail(w, newTestRequest(t, http.MethodPost, "/auth/verify-email", handlers.VerifyEmailRequest{
			Email: "ghost@example.com",
			Code:  "123456",
		}))

		assertErrorResponse(t, w, http.StatusNotFound, "not_found")
	})
}

func TestResendCode_AlreadyVerified(t *testing.T) {
	handler := handlers.NewAuthHandler(&mockAuthService{
		ResendCodeFunc: func(ctx context.Context, email string) (string, error) {
			return services.MsgAlreadyVerified, nil
		},
	})

	w := httptest.NewRecorder()
	handler.ResendCode(w, newTestRequest(t, http.MethodPost, "/auth/resend-code", handlers.ResendCodeRequest{Email: "user@example.com"}))

	var resp pkghttp.MessageResponse
	assertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, services.MsgAlreadyVerified, resp.Message)
}

func TestMe(t *testing.T) {
	handler := handlers.NewAuthHandler(&mockAuthService{
		GetProfileFunc: func(ctx context.Context, userID int64) (*models.UserProfile, error) {
			return &models.UserProfile{ID: userID, Email: "user@example.com", Role: models.RoleUser}, nil
		},
	})

	t.Run("returns caller profile", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Me(w, withUser(newTestRequest(t, http.MethodGet, "/auth/me", nil), 8, models.RoleUser))

		var profile map[string]any
		assertJSONResponse(t, w, http.StatusOK, &profile)
		assert.EqualValues(t, 8, profile["id"])
		assert.NotContains(t, profile, "passwordHash")
	})

	t.Run("no claims", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Me(w, newTestRequest(t, http.MethodGet, "/auth/me", nil))
		assertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized")
	})
}

func TestUserHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		handler := handlers.NewUserHandler(&mockUserService{
			ListUsersFunc: func(ctx context.Context) ([]models.UserProfile, error) {
				return []models.UserProfile{{ID: 2}, {ID: 1}}, nil
			},
		})

		w := httptest.NewRecorder()
		handler.ListUsers(w, newTestRequest(t, http.MethodGet, "/auth/users", nil))

		var resp handlers.ListUsersResponse
		assertJSONResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("delete passes actor and target", func(t *testing.T) {
		var actor, target int64
		handler := handlers.NewUserHandler(&mockUserService{
			DeleteUserFunc: func(ctx context.Context, actorID, id int64) error {
				actor, target = actorID, id
				return nil
			},
		})

		req := withURLParam(withUser(newTestRequest(t, http.MethodDelete, "/auth/users/5", nil), 1, models.RoleAdmin), "id", "5")
		w := httptest.NewRecorder()
		handler.DeleteUser(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(1), actor)
		assert.Equal(t, int64(5), target)
	})

	t.Run("delete missing user", func(t *testing.T) {
		handler := handlers.NewUserHandler(&mockUserService{
			DeleteUserFunc: func(ctx context.Context, actorID, id int64) error {
				return models.ErrNotFound
			},
		})

		req := withURLParam(newTestRequest(t, http.MethodDelete, "/auth/users/99", nil), "id", "99")
		w := httptest.NewRecorder()
		handler.DeleteUser(w, req)

		assertErrorResponse(t, w, http.StatusNotFound, "not_found")
	})

	t.Run("delete with bad id", func(t *testing.T) {
		handler := handlers.NewUserHandler(&mockUserService{})

		req := withURLParam(newTestRequest(t, http.MethodDelete, "/auth/users/abc", nil), "id", "abc")
		w := httptest.NewRecorder()
		handler.DeleteUser(w, req)

		assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
	})
}
