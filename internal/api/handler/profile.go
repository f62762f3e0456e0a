package handler

import (
	"encoding/json"
	"net/http"

	"github.com/draftelite/onboarding-go/internal/api/request"
	"github.com/draftelite/onboarding-go/internal/api/response"
	"github.com/draftelite/onboarding-go/internal/services/flow"
	"github.com/draftelite/onboarding-go/internal/services/wizard"
)

// ProfileHandler handles profile submission and retrieval endpoints
type ProfileHandler struct {
	flows *flow.Manager
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(flows *flow.Manager) *ProfileHandler {
	return &ProfileHandler{
		flows: flows,
	}
}

// SubmitPlayer handles POST /api/v1/profiles/player
func (h *ProfileHandler) SubmitPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.PlayerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	err = controller.SavePlayerProfile(r.Context(), wizard.PlayerProfileForm{
		Position:      req.Position,
		Location:      req.Location,
		Nationality:   req.Nationality,
		ClubName:      req.ClubName,
		Height:        req.Height,
		Weight:        req.Weight,
		PreferredFoot: req.PreferredFoot,
		HighlightLink: req.HighlightLink,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SubmitChild handles POST /api/v1/profiles/child
func (h *ProfileHandler) SubmitChild(w http.ResponseWriter, r *http.Request) {
	var req request.ChildProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	err = controller.SubmitChildProfile(r.Context(), wizard.ChildProfileForm{
		FullName:      req.FullName,
		DateOfBirth:   req.DateOfBirth,
		Position:      req.Position,
		Location:      req.Location,
		Nationality:   req.Nationality,
		ClubName:      req.ClubName,
		Height:        req.Height,
		Weight:        req.Weight,
		PreferredFoot: req.PreferredFoot,
		HighlightLink: req.HighlightLink,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// GetMe handles GET /api/v1/profiles/me
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	controller, err := controllerFor(h.flows, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	profile, err := controller.Profile(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileFromModel(profile))
}
