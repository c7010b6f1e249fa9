package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUsers struct {
	user *models.User
	err  error
}

func (s *stubUsers) Create(context.Context, *models.User) error { return nil }
func (s *stubUsers) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (s *stubUsers) FindByID(context.Context, string) (*models.User, error) {
	return s.user, s.err
}
func (s *stubUsers) FindByEmailAndAnswer(context.Context, string, string) (*models.User, error) {
	return nil, nil
}
func (s *stubUsers) UpdatePassword(context.Context, string, string) error { return nil }

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestRequireSignInMissingToken(t *testing.T) {
	var hit bool
	rec := httptest.NewRecorder()
	RequireSignIn(okHandler(&hit)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestRequireSignInInvalidToken(t *testing.T) {
	var hit bool
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "not.a.jwt")

	rec := httptest.NewRecorder()
	RequireSignIn(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, hit)
}

func TestRequireSignInAcceptsRawAndBearerTokens(t *testing.T) {
	token, err := auth.GenerateToken(primitive.NewObjectID().Hex(), 0)
	require.NoError(t, err)

	for _, header := range []string{token, "Bearer " + token} {
		var hit bool
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)

		rec := httptest.NewRecorder()
		RequireSignIn(okHandler(&hit)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, hit)
	}
}

func TestRequireSignInAttachesIdentity(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	token, err := auth.GenerateToken(userID, 1)
	require.NoError(t, err)

	var got *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = IdentityFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)
	RequireSignIn(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, 1, got.Role)
}

func adminRequest(t *testing.T, userID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(WithIdentity(req.Context(), &auth.Claims{UserID: userID}))
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	admin := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	gate := NewAdminGate(&stubUsers{user: admin})

	var hit bool
	rec := httptest.NewRecorder()
	gate.RequireAdmin(okHandler(&hit)).ServeHTTP(rec, adminRequest(t, admin.ID.Hex()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}

func TestRequireAdminRejectsNonAdmins(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	gate := NewAdminGate(&stubUsers{user: user})

	var hit bool
	rec := httptest.NewRecorder()
	gate.RequireAdmin(okHandler(&hit)).ServeHTTP(rec, adminRequest(t, user.ID.Hex()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UnAuthorized Access", message(t, rec))
	assert.False(t, hit)
}

func TestRequireAdminRejectsUnknownUser(t *testing.T) {
	gate := NewAdminGate(&stubUsers{})

	var hit bool
	rec := httptest.NewRecorder()
	gate.RequireAdmin(okHandler(&hit)).ServeHTTP(rec, adminRequest(t, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UnAuthorized Access", message(t, rec))
	assert.False(t, hit)
}

func TestRequireAdminStoreFailure(t *testing.T) {
	gate := NewAdminGate(&stubUsers{err: errors.New("mongo down")})

	var hit bool
	rec := httptest.NewRecorder()
	gate.RequireAdmin(okHandler(&hit)).ServeHTTP(rec, adminRequest(t, primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Error in admin middleware", message(t, rec))
	assert.False(t, hit)
}
