package model

import (
	"strings"
	"time"
)

// Role distinguishes who a profile record describes.
type Role string

const (
	RolePlayer Role = "player"
	RoleParent Role = "parent"
	RoleChild  Role = "child"
)

// Position is a playing position. The selection screens offer exactly these
// five values.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
	PositionWinger     Position = "Winger"
)

// Positions lists every valid position in display order.
func Positions() []Position {
	return []Position{
		PositionGoalkeeper,
		PositionDefender,
		PositionMidfielder,
		PositionForward,
		PositionWinger,
	}
}

// ParsePosition validates a raw position string.
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions() {
		if Position(s) == p {
			return p, nil
		}
	}
	return "", ErrUnknownPosition
}

// PreferredFoot is stored lowercase regardless of how the input was cased.
type PreferredFoot string

const (
	FootLeft  PreferredFoot = "left"
	FootRight PreferredFoot = "right"
	FootBoth  PreferredFoot = "both"
)

// ParsePreferredFoot validates a raw preferred-foot string, accepting any
// casing.
func ParsePreferredFoot(s string) (PreferredFoot, error) {
	switch PreferredFoot(strings.ToLower(s)) {
	case FootLeft:
		return FootLeft, nil
	case FootRight:
		return FootRight, nil
	case FootBoth:
		return FootBoth, nil
	}
	return "", ErrUnknownPreferredFoot
}

// ProfileStatusPending is the review status stamped on every new profile.
// Staff review profiles before players can apply for trials.
const ProfileStatusPending = "pending"

// Profile is the record upserted to the external profile store, keyed by
// user id (one row per user). Numeric fields are optional; nil means the
// user left them blank.
type Profile struct {
	UserID        UserID        `json:"user_id"`
	Role          Role          `json:"role"`
	FullName      string        `json:"full_name"`
	DateOfBirth   string        `json:"date_of_birth"`
	Email         string        `json:"email,omitempty"`
	Country       string        `json:"country,omitempty"`
	IsUnder18     bool          `json:"is_under_18"`
	Position      Position      `json:"position"`
	Location      string        `json:"location"`
	Nationality   string        `json:"nationality"`
	ClubName      string        `json:"club_name,omitempty"`
	HeightCm      *int          `json:"height_cm,omitempty"`
	WeightKg      *int          `json:"weight_kg,omitempty"`
	PreferredFoot PreferredFoot `json:"preferred_foot"`
	HighlightLink string        `json:"highlight_link,omitempty"`
	Status        string        `json:"status"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
