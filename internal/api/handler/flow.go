package handler

import (
	"encoding/json"
	"net/http"

	"github.com/draftelite/onboarding-go/internal/api/request"
	"github.com/draftelite/onboarding-go/internal/api/response"
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/flow"
)

// FlowHandler handles screen-resolution and wizard navigation endpoints
type FlowHandler struct {
	flows *flow.Manager
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(flows *flow.Manager) *FlowHandler {
	return &FlowHandler{
		flows: flows,
	}
}

// Get handles GET /api/v1/flow
func (h *FlowHandler) Get(w http.ResponseWriter, r *http.Request) {
	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeFlow(w, r, controller)
}

// CompleteOnboarding handles POST /api/v1/flow/onboarding/complete
func (h *FlowHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := controller.FinishOnboarding(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	h.writeFlow(w, r, controller)
}

// RequestSignup handles POST /api/v1/flow/signup
func (h *FlowHandler) RequestSignup(w http.ResponseWriter, r *http.Request) {
	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := controller.Wizard().RequestSignup(); err != nil {
		WriteError(w, err)
		return
	}
	h.writeFlow(w, r, controller)
}

// ChooseAccountType handles POST /api/v1/flow/account-type
func (h *FlowHandler) ChooseAccountType(w http.ResponseWriter, r *http.Request) {
	var req request.AccountTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	accountType, err := model.ParseAccountType(req.AccountType)
	if err != nil {
		WriteError(w, err)
		return
	}

	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := controller.Wizard().ChooseAccountType(accountType); err != nil {
		WriteError(w, err)
		return
	}
	h.writeFlow(w, r, controller)
}

// ReturnToLogin handles POST /api/v1/flow/return-to-login
func (h *FlowHandler) ReturnToLogin(w http.ResponseWriter, r *http.Request) {
	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	controller.Wizard().ReturnToLogin()
	h.writeFlow(w, r, controller)
}

func (h *FlowHandler) writeFlow(w http.ResponseWriter, r *http.Request, controller *flow.Controller) {
	resolution, err := controller.Resolve(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := response.FlowFromResolution(resolution, controller.Wizard().Mode(), controller.ProfileStatus())
	response.JSON(w, http.StatusOK, out)
}
