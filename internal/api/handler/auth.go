package handler

import (
	"encoding/json"
	"net/http"

	"github.com/draftelite/onboarding-go/internal/api/request"
	"github.com/draftelite/onboarding-go/internal/api/response"
	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/flow"
	"github.com/draftelite/onboarding-go/internal/services/wizard"
)

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	flows *flow.Manager
	auth  backend.AuthClient
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(flows *flow.Manager, auth backend.AuthClient) *AuthHandler {
	return &AuthHandler{
		flows: flows,
		auth:  auth,
	}
}

// SignupPlayer handles POST /api/v1/auth/signup/player
func (h *AuthHandler) SignupPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	err = controller.Wizard().CreatePlayerAccount(r.Context(), wizard.PlayerAccountForm{
		FullName:        req.FullName,
		DateOfBirth:     req.DateOfBirth,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	account := controller.Wizard().Account()
	response.JSON(w, http.StatusCreated, response.AccountData{
		FullName:    account.FullName,
		DateOfBirth: account.DateOfBirth,
		Email:       account.Email,
		UserID:      string(account.UserID),
	})
}

// SignupParent handles POST /api/v1/auth/signup/parent
func (h *AuthHandler) SignupParent(w http.ResponseWriter, r *http.Request) {
	var req request.ParentSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	err = controller.Wizard().CreateParentAccount(r.Context(), wizard.ParentAccountForm{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	account := controller.Wizard().Account()
	response.JSON(w, http.StatusCreated, response.AccountData{
		FullName: account.FullName,
		Email:    account.Email,
		UserID:   string(account.UserID),
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := controller.SignIn(r.Context(), req.Email, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.auth.GetSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	if session == nil {
		WriteError(w, model.ErrNoSession)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := controller.SignOut(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ResetPassword handles POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}

	if err := h.auth.ResetPasswordForEmail(r.Context(), req.Email); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ResendConfirmation handles POST /api/v1/auth/resend
func (h *AuthHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req request.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}

	if err := h.auth.ResendSignup(r.Context(), req.Email); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
