package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradenHooton/gardenbook/internal/auth"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
	pkghttp "github.com/BradenHooton/gardenbook/pkg/http"
)

// newTestRequest creates an HTTP request with JSON body for testing
func newTestRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withUser adds token claims to the request context
func withUser(req *http.Request, id int64, role string) *http.Request {
	claims := &models.TokenClaims{UserID: id, Email: "user@example.com", Role: role, IsVerified: true}
	return req.WithContext(auth.WithUser(req.Context(), claims))
}

// withURLParam sets a chi URL parameter on the request
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// assertJSONResponse checks that response has correct status and decodes JSON body
func assertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	if target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "Failed to decode response JSON")
	}
}

// assertErrorResponse checks that response is a valid error response
func assertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedError string) pkghttp.ErrorResponse {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Failed to decode error response")
	assert.Equal(t, expectedError, resp.Error, "Error code mismatch")
	assert.NotEmpty(t, resp.Message, "Error message should not be empty")
	return resp
}

// mockAuthService implements AuthServiceInterface for testing
type mockAuthService struct {
	RegisterFunc    func(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error)
	LoginFunc       func(ctx context.Context, email, password string) (*models.AuthToken, error)
	VerifyEmailFunc func(ctx context.Context, email, code string) (*models.AuthToken, error)
	ResendCodeFunc  func(ctx context.Context, email string) (string, error)
	GetProfileFunc  func(ctx context.Context, userID int64) (*models.UserProfile, error)
}

func (m *mockAuthService) Register(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error) {
	if m.RegisterFunc == nil {
		return nil, models.ErrConflict
	}
	return m.RegisterFunc(ctx, in)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.AuthToken, error) {
	if m.LoginFunc == nil {
		return nil, models.ErrInvalidCredentials
	}
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, email, code string) (*models.AuthToken, error) {
	if m.VerifyEmailFunc == nil {
		return nil, models.ErrCodeInvalid
	}
	return m.VerifyEmailFunc(ctx, email, code)
}

func (m *mockAuthService) ResendCode(ctx context.Context, email string) (string, error) {
	if m.ResendCodeFunc == nil {
		return services.MsgCodeResent, nil
	}
	return m.ResendCodeFunc(ctx, email)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	if m.GetProfileFunc == nil {
		return nil, models.ErrNotFound
	}
	return m.GetProfileFunc(ctx, userID)
}

// mockUserService implements UserService for testing
type mockUserService struct {
	ListUsersFunc  func(ctx context.Context) ([]models.UserProfile, error)
	DeleteUserFunc func(ctx context.Context, actorID, id int64) error
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	if m.ListUsersFunc == nil {
		return []models.UserProfile{}, nil
	}
	return m.ListUsersFunc(ctx)
}

func (m *mockUserService) DeleteUser(ctx context.Context, actorID, id int64) error {
	if m.DeleteUserFunc == nil {
		return nil
	}
	return m.DeleteUserFunc(ctx, actorID, id)
}

// mockRecordService implements RecordService[T] for testing
type mockRecordService[T any] struct {
	CreateFunc func(ctx context.Context, rec *T) (*T, error)
	GetFunc    func(ctx context.Context, id int64) (*T, error)
	UpdateFunc func(ctx context.Context, id int64, patch services.Patch[T]) (*T, error)
	DeleteFunc func(ctx context.Context, id int64) error
	ListFunc   func(ctx context.Context, q *listing.Query) (*listing.Page[*T], error)
	ExportFunc func(ctx context.Context, q *listing.Query) (*listing.Page[*T], error)
}

func (m *mockRecordService[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if m.CreateFunc == nil {
		return rec, nil
	}
	return m.CreateFunc(ctx, rec)
}

func (m *mockRecordService[T]) Get(ctx context.Context, id int64) (*T, error) {
	if m.GetFunc == nil {
		return nil, models.ErrNotFound
	}
	return m.GetFunc(ctx, id)
}

func (m *mockRecordService[T]) Update(ctx context.Context, id int64, patch services.Patch[T]) (*T, error) {
	if m.UpdateFunc == nil {
		return nil, models.ErrNotFound
	}
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockRecordService[T]) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id)
}

func (m *mockRecordService[T]) List(ctx context.Context, q *listing.Query) (*listing.Page[*T], error) {
	if m.ListFunc == nil {
		return &listing.Page[*T]{Data: []*T{}, Meta: listing.NewMeta(q, 0, nil)}, nil
	}
	return m.ListFunc(ctx, q)
}

func (m *mockRecordService[T]) Export(ctx context.Context, q *listing.Query) (*listing.Page[*T], error) {
	if m.ExportFunc == nil {
		return m.List(ctx, q.Unpaged(services.ExportLimit))
	}
	return m.ExportFunc(ctx, q)
}
