package wizard

import (
	"strings"

	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/age"
	"github.com/draftelite/onboarding-go/internal/services/profile"
)

// Form validation applies before any external call. The first failing rule
// wins; only one message surfaces at a time.

// PlayerAccountForm is the player account-creation form. DateOfBirth is
// YYYY-MM-DD; an unparseable entry is not a validation failure, it falls
// through to the age policy.
type PlayerAccountForm struct {
	FullName        string
	DateOfBirth     string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f *PlayerAccountForm) trim() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	f.Email = strings.TrimSpace(f.Email)
}

func (f PlayerAccountForm) validate() error {
	if f.FullName == "" {
		return model.NewValidationError("full_name", "Full name is required.")
	}
	if f.DateOfBirth == "" {
		return model.NewValidationError("date_of_birth", "Date of birth is required.")
	}
	return validateCredentials(f.Email, f.Password, f.ConfirmPassword)
}

// ParentAccountForm is the parent/guardian account-creation form.
type ParentAccountForm struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f *ParentAccountForm) trim() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
}

func (f ParentAccountForm) validate() error {
	if f.FullName == "" {
		return model.NewValidationError("full_name", "Full name is required.")
	}
	return validateCredentials(f.Email, f.Password, f.ConfirmPassword)
}

func validateCredentials(email, password, confirm string) error {
	if email == "" {
		return model.NewValidationError("email", "Email is required.")
	}
	if !strings.Contains(email, "@") {
		return model.NewValidationError("email", "Please enter a valid email address.")
	}
	if strings.TrimSpace(password) == "" {
		return model.NewValidationError("password", "Password is required.")
	}
	if len(password) < 8 {
		return model.NewValidationError("password", "Password must be at least 8 characters.")
	}
	if password != confirm {
		return model.NewValidationError("confirm_password", "Passwords do not match.")
	}
	return nil
}

// PlayerProfileForm is the raw player profile-setup form. Position and
// preferred foot come from pickers but arrive as strings over the wire, so
// they are parsed against the closed enums here.
type PlayerProfileForm struct {
	Position      string
	Location      string
	Nationality   string
	ClubName      string
	Height        string
	Weight        string
	PreferredFoot string
	HighlightLink string
}

// Parse validates the form and converts it for saving.
func (f PlayerProfileForm) Parse() (profile.PlayerForm, error) {
	position, foot, err := validateProfileCommon(f.Position, f.Location, f.Nationality, f.PreferredFoot)
	if err != nil {
		return profile.PlayerForm{}, err
	}
	return profile.PlayerForm{
		Position:      position,
		Location:      strings.TrimSpace(f.Location),
		Nationality:   strings.TrimSpace(f.Nationality),
		ClubName:      strings.TrimSpace(f.ClubName),
		Height:        f.Height,
		Weight:        f.Weight,
		PreferredFoot: foot,
		HighlightLink: strings.TrimSpace(f.HighlightLink),
	}, nil
}

// ChildProfileForm is the raw child profile-setup form a guardian fills in.
// DateOfBirth is DD/MM/YYYY and, unlike the player form, must parse: the
// age policy never sees it, so there is no later gate to catch garbage.
type ChildProfileForm struct {
	FullName      string
	DateOfBirth   string
	Position      string
	Location      string
	Nationality   string
	ClubName      string
	Height        string
	Weight        string
	PreferredFoot string
	HighlightLink string
}

// Parse validates the form and converts it for saving.
func (f ChildProfileForm) Parse() (profile.ChildForm, error) {
	if strings.TrimSpace(f.FullName) == "" {
		return profile.ChildForm{}, model.NewValidationError("full_name", "Child's full name is required.")
	}
	if strings.TrimSpace(f.DateOfBirth) == "" {
		return profile.ChildForm{}, model.NewValidationError("date_of_birth", "Child's date of birth is required.")
	}
	dob, err := age.Parse(strings.TrimSpace(f.DateOfBirth), age.FormatUK)
	if err != nil {
		return profile.ChildForm{}, model.NewValidationError("date_of_birth",
			"Please enter your child's date of birth in DD/MM/YYYY format.")
	}
	position, foot, err := validateProfileCommon(f.Position, f.Location, f.Nationality, f.PreferredFoot)
	if err != nil {
		return profile.ChildForm{}, err
	}
	return profile.ChildForm{
		FullName:      strings.TrimSpace(f.FullName),
		DateOfBirth:   dob,
		Position:      position,
		Location:      strings.TrimSpace(f.Location),
		Nationality:   strings.TrimSpace(f.Nationality),
		ClubName:      strings.TrimSpace(f.ClubName),
		Height:        f.Height,
		Weight:        f.Weight,
		PreferredFoot: foot,
		HighlightLink: strings.TrimSpace(f.HighlightLink),
	}, nil
}

func validateProfileCommon(position, location, nationality, foot string) (model.Position, model.PreferredFoot, error) {
	if strings.TrimSpace(position) == "" {
		return "", "", model.NewValidationError("position", "Position is required.")
	}
	parsedPosition, err := model.ParsePosition(strings.TrimSpace(position))
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(location) == "" {
		return "", "", model.NewValidationError("location", "Location is required.")
	}
	if strings.TrimSpace(nationality) == "" {
		return "", "", model.NewValidationError("nationality", "Nationality is required.")
	}
	if strings.TrimSpace(foot) == "" {
		return "", "", model.NewValidationError("preferred_foot", "Preferred foot is required.")
	}
	parsedFoot, err := model.ParsePreferredFoot(strings.TrimSpace(foot))
	if err != nil {
		return "", "", err
	}
	return parsedPosition, parsedFoot, nil
}
