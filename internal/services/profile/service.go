package profile

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/dependencies/clock"
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/age"
)

// Service builds and saves profile rows and answers profile-existence
// checks.
type Service struct {
	store  backend.ProfileStore
	clock  clock.Clock
	logger *slog.Logger
}

func NewService(store backend.ProfileStore, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// PlayerForm holds the player profile-setup fields. Height and weight are
// free text; non-numeric entries are dropped rather than rejected.
type PlayerForm struct {
	Position      model.Position
	Location      string
	Nationality   string
	ClubName      string
	Height        string
	Weight        string
	PreferredFoot model.PreferredFoot
	HighlightLink string
}

// ChildForm holds the child profile-setup fields a parent fills in. Identity
// comes from the form, not the parent's account.
type ChildForm struct {
	FullName      string
	DateOfBirth   age.DateOfBirth
	Position      model.Position
	Location      string
	Nationality   string
	ClubName      string
	Height        string
	Weight        string
	PreferredFoot model.PreferredFoot
	HighlightLink string
}

// SavePlayerProfile upserts the player's own profile row. The identity
// fields were captured at account creation and the age gate already ran, so
// the row is always an adult player pending review.
func (s *Service) SavePlayerProfile(ctx context.Context, account model.AccountData, form PlayerForm) error {
	return s.store.Upsert(ctx, &model.Profile{
		UserID:        account.UserID,
		Role:          model.RolePlayer,
		FullName:      account.FullName,
		DateOfBirth:   account.DateOfBirth,
		Email:         account.Email,
		IsUnder18:     false,
		Position:      form.Position,
		Location:      form.Location,
		Nationality:   form.Nationality,
		ClubName:      form.ClubName,
		HeightCm:      parseMeasurement(form.Height),
		WeightKg:      parseMeasurement(form.Weight),
		PreferredFoot: form.PreferredFoot,
		HighlightLink: form.HighlightLink,
		Status:        model.ProfileStatusPending,
		UpdatedAt:     s.clock.Now(),
	})
}

// SaveChildProfile upserts a child profile under the guardian's user id,
// with the guardian's email as the row's contact address. The child is
// always recorded as under 18 and the country mirrors the nationality
// field, which is the only country-like input on the child form.
func (s *Service) SaveChildProfile(ctx context.Context, guardian model.AccountData, form ChildForm) error {
	return s.store.Upsert(ctx, &model.Profile{
		UserID:        guardian.UserID,
		Role:          model.RoleChild,
		FullName:      form.FullName,
		DateOfBirth:   form.DateOfBirth.ISO(),
		Email:         guardian.Email,
		Country:       form.Nationality,
		IsUnder18:     true,
		Position:      form.Position,
		Location:      form.Location,
		Nationality:   form.Nationality,
		ClubName:      form.ClubName,
		HeightCm:      parseMeasurement(form.Height),
		WeightKg:      parseMeasurement(form.Weight),
		PreferredFoot: form.PreferredFoot,
		HighlightLink: form.HighlightLink,
		Status:        model.ProfileStatusPending,
		UpdatedAt:     s.clock.Now(),
	})
}

// Get returns the user's profile row, or model.ErrProfileNotFound.
func (s *Service) Get(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	return s.store.GetByUserID(ctx, userID)
}

// Check reports whether a profile row exists for the user. Store failures
// resolve to needs-profile: sending the user to profile setup is recoverable,
// silently skipping it is not.
func (s *Service) Check(ctx context.Context, userID model.UserID) model.ProfileStatus {
	_, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, model.ErrProfileNotFound) {
			s.logger.ErrorContext(ctx, "profile existence check failed",
				slog.String("user_id", string(userID)),
				slog.String("error", err.Error()))
		}
		return model.ProfileStatusNeedsProfile
	}
	return model.ProfileStatusHasProfile
}

// parseMeasurement extracts a positive integer from free-text height/weight
// input. Blank or non-numeric entries store as null.
func parseMeasurement(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
