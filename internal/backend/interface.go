package backend

import (
	"context"

	"github.com/draftelite/onboarding-go/internal/model"
)

// AuthClient is the contract of the external authentication service. The
// concrete backend protocol is out of scope; implementations map their own
// failure modes onto the model sentinels where one applies and otherwise
// pass the backend's message through verbatim.
type AuthClient interface {
	// SignIn authenticates with email and password and establishes a
	// session.
	SignIn(ctx context.Context, email, password string) (*model.Session, error)

	// SignUp creates an account. A session is not necessarily established:
	// backends that require email confirmation return the user only.
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*model.User, error)

	// SignOut clears the current session.
	SignOut(ctx context.Context) error

	// ResetPasswordForEmail requests a password reset email.
	ResetPasswordForEmail(ctx context.Context, email string) error

	// ResendSignup re-sends the signup confirmation email.
	ResendSignup(ctx context.Context, email string) error

	// GetSession returns the current session, or nil when there is none.
	GetSession(ctx context.Context) (*model.Session, error)

	// OnSessionChange registers a callback invoked with the new session
	// (nil on sign-out) whenever session presence flips. The returned
	// function unsubscribes.
	OnSessionChange(fn func(*model.Session)) (unsubscribe func())
}

// ProfileStore is the contract of the external profile record store.
// Upsert is idempotent by user id: submitting the same payload twice leaves
// exactly one row. GetByUserID returns model.ErrProfileNotFound when no row
// exists; absence is an expected outcome, not an error condition.
type ProfileStore interface {
	Upsert(ctx context.Context, profile *model.Profile) error
	GetByUserID(ctx context.Context, userID model.UserID) (*model.Profile, error)
}
