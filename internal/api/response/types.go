package response

import (
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/flow"
)

// FlowResponse describes the screen a client should render.
type FlowResponse struct {
	Screen        string       `json:"screen"`
	WizardMode    string       `json:"wizard_mode"`
	ProfileStatus string       `json:"profile_status"`
	Prefill       *AccountData `json:"prefill,omitempty"`
}

// AccountData is the prefill payload for profile-setup screens.
type AccountData struct {
	FullName    string `json:"full_name,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Email       string `json:"email,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

// FlowFromResolution builds a FlowResponse.
func FlowFromResolution(resolution flow.Resolution, mode model.WizardMode, status model.ProfileStatus) FlowResponse {
	out := FlowResponse{
		Screen:        string(resolution.Screen),
		WizardMode:    string(mode),
		ProfileStatus: string(status),
	}
	if resolution.Prefill != nil {
		out.Prefill = &AccountData{
			FullName:    resolution.Prefill.FullName,
			DateOfBirth: resolution.Prefill.DateOfBirth,
			Email:       resolution.Prefill.Email,
			UserID:      string(resolution.Prefill.UserID),
		}
	}
	return out
}

// Session is the session payload returned after login.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
}

// SessionFromModel builds a Session response.
func SessionFromModel(session *model.Session) Session {
	return Session{
		UserID: string(session.UserID),
		Email:  session.Email,
		Role:   session.Meta(model.MetaRole),
	}
}

// Profile is the profile payload for GET /profiles/me.
type Profile struct {
	UserID        string `json:"user_id"`
	Role          string `json:"role"`
	FullName      string `json:"full_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Position      string `json:"position"`
	Location      string `json:"location"`
	Nationality   string `json:"nationality"`
	ClubName      string `json:"club_name,omitempty"`
	HeightCm      *int   `json:"height_cm,omitempty"`
	WeightKg      *int   `json:"weight_kg,omitempty"`
	PreferredFoot string `json:"preferred_foot"`
	HighlightLink string `json:"highlight_link,omitempty"`
	IsUnder18     bool   `json:"is_under_18"`
	Status        string `json:"status"`
}

// ProfileFromModel builds a Profile response.
func ProfileFromModel(profile *model.Profile) Profile {
	return Profile{
		UserID:        string(profile.UserID),
		Role:          string(profile.Role),
		FullName:      profile.FullName,
		DateOfBirth:   profile.DateOfBirth,
		Position:      string(profile.Position),
		Location:      profile.Location,
		Nationality:   profile.Nationality,
		ClubName:      profile.ClubName,
		HeightCm:      profile.HeightCm,
		WeightKg:      profile.WeightKg,
		PreferredFoot: string(profile.PreferredFoot),
		HighlightLink: profile.HighlightLink,
		IsUnder18:     profile.IsUnder18,
		Status:        profile.Status,
	}
}
