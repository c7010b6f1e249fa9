// Package controllers maps HTTP requests onto the services and the service
// errors back onto the statuses and messages the storefront SPA matches on.
// The messages are load-bearing: the SPA switches on them verbatim, typos
// included, so they are preserved exactly.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/gokart/app/services"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/response"
	"github.com/shashiranjanraj/gokart/pkg/validate"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register creates an account. Presence checks run field by field before the
// format checks, each with its own historical message.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Answer   string `json:"answer"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	switch {
	case body.Name == "":
		response.Fail(w, http.StatusBadRequest, "Name is Required")
		return
	case body.Email == "":
		response.Fail(w, http.StatusBadRequest, "Email is Required")
		return
	case body.Password == "":
		response.Fail(w, http.StatusBadRequest, "Password is Required")
		return
	case body.Phone == "":
		response.Fail(w, http.StatusBadRequest, "Phone no is Required")
		return
	case body.Address == "":
		response.Fail(w, http.StatusBadRequest, "Address is Required")
		return
	case body.Answer == "":
		response.Fail(w, http.StatusBadRequest, "Answer is Required")
		return
	}

	switch {
	case !validate.Email(body.Email):
		response.Fail(w, http.StatusBadRequest, "Invalid Email")
		return
	case !validate.Phone(body.Phone):
		response.Fail(w, http.StatusBadRequest, "Invalid Phone Number")
		return
	case !validate.Password(body.Password):
		response.Fail(w, http.StatusBadRequest, "Invalid password")
		return
	}

	user, err := c.auth.Register(r.Context(), services.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Phone:    body.Phone,
		Address:  body.Address,
		Answer:   body.Answer,
	})
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		// Historically a 200 with success=false, not a conflict status.
		response.Fail(w, http.StatusOK, "Already Register please login")
	case err != nil:
		logger.WithCtx(r.Context()).Error("register failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error in Registeration")
	default:
		response.Success(w, http.StatusCreated, "User Register Successfully", response.M{"user": user})
	}
}

// Login verifies credentials and returns the signed bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	if body.Email == "" || body.Password == "" {
		response.Fail(w, http.StatusNotFound, "Invalid email or password")
		return
	}

	user, token, err := c.auth.Login(r.Context(), body.Email, body.Password)
	switch {
	case errors.Is(err, services.ErrEmailNotFound):
		response.Fail(w, http.StatusNotFound, "Email is not registerd")
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Fail(w, http.StatusOK, "Invalid Password")
	case err != nil:
		logger.WithCtx(r.Context()).Error("login failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Error in login")
	default:
		response.Success(w, http.StatusOK, "login successfully", response.M{
			"user":  user,
			"token": token,
		})
	}
}

// ForgotPassword resets the credential of the user matching email plus
// security answer.
func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Answer      string `json:"answer"`
		NewPassword string `json:"newPassword"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	switch {
	case body.Email == "":
		response.Fail(w, http.StatusBadRequest, "Email is required")
		return
	case body.Answer == "":
		response.Fail(w, http.StatusBadRequest, "answer is required")
		return
	case body.NewPassword == "":
		response.Fail(w, http.StatusBadRequest, "New Password is required")
		return
	case !validate.Password(body.NewPassword):
		response.Fail(w, http.StatusBadRequest, "Invalid password")
		return
	}

	err := c.auth.ResetPassword(r.Context(), body.Email, body.Answer, body.NewPassword)
	switch {
	case errors.Is(err, services.ErrWrongEmailOrAnswer):
		response.Fail(w, http.StatusNotFound, "Wrong Email Or Answer")
	case err != nil:
		logger.WithCtx(r.Context()).Error("password reset failed", "error", err.Error())
		response.Fail(w, http.StatusInternalServerError, "Something went wrong")
	default:
		response.Success(w, http.StatusOK, "Password Reset Successfully", nil)
	}
}

// Test is the probe endpoint behind the sign-in middleware. The SPA checks
// the literal body text, so this is plain text rather than the envelope.
func (c *AuthController) Test(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Protected Routes"))
}

// Check answers the SPA's route-guard probes (user-auth and admin-auth).
// Reaching the handler at all means the middleware chain passed.
func (c *AuthController) Check(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.M{"ok": true})
}
