package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUsers is the in-memory repositories.UserRepository used across the
// controller tests.
type fakeUsers struct {
	users   []*models.User
	findErr error
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByEmailAndAnswer(_ context.Context, email, answer string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Answer == answer {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, passwordHash string) error {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.Password = passwordHash
		}
	}
	return nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validRegisterBody() map[string]any {
	return map[string]any{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "Pass123!",
		"phone":    "123-456-7890",
		"address":  "123 Street",
		"answer":   "Football",
	}
}

func newAuthController() (*AuthController, *fakeUsers) {
	users := &fakeUsers{}
	return NewAuthController(services.NewAuthService(users)), users
}

func TestRegisterSuccess(t *testing.T) {
	ctrl, users := newAuthController()

	rec := postJSON(t, ctrl.Register, validRegisterBody())
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := envelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User Register Successfully", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John Doe", user["name"])
	// The hash and security answer must never serialise.
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "answer")

	require.Len(t, users.users, 1)
	assert.NotEqual(t, "Pass123!", users.users[0].Password)
}

func TestRegisterMissingFields(t *testing.T) {
	cases := []struct {
		field   string
		message string
	}{
		{"name", "Name is Required"},
		{"email", "Email is Required"},
		{"password", "Password is Required"},
		{"phone", "Phone no is Required"},
		{"address", "Address is Required"},
		{"answer", "Answer is Required"},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			ctrl, users := newAuthController()

			body := validRegisterBody()
			delete(body, tc.field)

			rec := postJSON(t, ctrl.Register, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, envelope(t, rec)["message"])
			assert.Empty(t, users.users)
		})
	}
}

func TestRegisterFormatChecks(t *testing.T) {
	cases := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"bad email", "email", "invalid-email", "Invalid Email"},
		{"bad phone", "phone", "invalid-phone", "Invalid Phone Number"},
		{"weak password", "password", "weak", "Invalid password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, _ := newAuthController()

			body := validRegisterBody()
			body[tc.field] = tc.value

			rec := postJSON(t, ctrl.Register, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, envelope(t, rec)["message"])
		})
	}
}

func TestRegisterDuplicateEmailReply(t *testing.T) {
	ctrl, _ := newAuthController()

	rec := postJSON(t, ctrl.Register, validRegisterBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, ctrl.Register, validRegisterBody())
	assert.Equal(t, http.StatusOK, rec.Code)

	body := envelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Already Register please login", body["message"])
}

func TestLoginFlows(t *testing.T) {
	ctrl, _ := newAuthController()
	rec := postJSON(t, ctrl.Register, validRegisterBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("missing input", func(t *testing.T) {
		rec := postJSON(t, ctrl.Login, map[string]any{"email": "john@example.com"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid email or password", envelope(t, rec)["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := postJSON(t, ctrl.Login, map[string]any{"email": "ghost@example.com", "password": "Pass123!"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Email is not registerd", envelope(t, rec)["message"])
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(t, ctrl.Login, map[string]any{"email": "john@example.com", "password": "Wrong123!"})
		assert.Equal(t, http.StatusOK, rec.Code)

		body := envelope(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid Password", body["message"])
	})

	t.Run("success", func(t *testing.T) {
		rec := postJSON(t, ctrl.Login, map[string]any{"email": "john@example.com", "password": "Pass123!"})
		assert.Equal(t, http.StatusOK, rec.Code)

		body := envelope(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "login successfully", body["message"])
		token, _ := body["token"].(string)
		assert.NotEmpty(t, token)
	})
}

func TestForgotPasswordFlows(t *testing.T) {
	ctrl, _ := newAuthController()
	rec := postJSON(t, ctrl.Register, validRegisterBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("missing fields", func(t *testing.T) {
		cases := []struct {
			body    map[string]any
			message string
		}{
			{map[string]any{"answer": "Football", "newPassword": "Fresh123!"}, "Email is required"},
			{map[string]any{"email": "john@example.com", "newPassword": "Fresh123!"}, "answer is required"},
			{map[string]any{"email": "john@example.com", "answer": "Football"}, "New Password is required"},
		}
		for _, tc := range cases {
			rec := postJSON(t, ctrl.ForgotPassword, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, envelope(t, rec)["message"])
		}
	})

	t.Run("wrong answer", func(t *testing.T) {
		rec := postJSON(t, ctrl.ForgotPassword, map[string]any{
			"email": "john@example.com", "answer": "Cricket", "newPassword": "Fresh123!",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Wrong Email Or Answer", envelope(t, rec)["message"])
	})

	t.Run("success then login with new password", func(t *testing.T) {
		rec := postJSON(t, ctrl.ForgotPassword, map[string]any{
			"email": "john@example.com", "answer": "Football", "newPassword": "Fresh123!",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Password Reset Successfully", envelope(t, rec)["message"])

		rec = postJSON(t, ctrl.Login, map[string]any{"email": "john@example.com", "password": "Fresh123!"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTestEndpointBody(t *testing.T) {
	ctrl, _ := newAuthController()

	req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(""))
	rec := httptest.NewRecorder()
	ctrl.Test(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Protected Routes", rec.Body.String())
}
