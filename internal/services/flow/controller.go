package flow

import (
	"context"
	"log/slog"
	"sync"

	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/onboarding"
	"github.com/draftelite/onboarding-go/internal/services/profile"
	"github.com/draftelite/onboarding-go/internal/services/wizard"
)

// Screen identifies what a client should render.
type Screen string

const (
	ScreenLoading             Screen = "loading"
	ScreenOnboarding          Screen = "onboarding"
	ScreenLogin               Screen = "login"
	ScreenSelectAccountType   Screen = "select_account_type"
	ScreenPlayerSignupAccount Screen = "player_signup_account"
	ScreenParentSignupAccount Screen = "parent_signup_account"
	ScreenPlayerProfileSetup  Screen = "player_profile_setup"
	ScreenChildProfileSetup   Screen = "child_profile_setup"
	ScreenSignupComplete      Screen = "signup_complete"
	ScreenHome                Screen = "home"
)

// Resolution is the outcome of a screen resolution. Prefill is set for
// profile-setup screens so the form can start from known account data.
type Resolution struct {
	Screen  Screen
	Prefill *model.AccountData
}

// Controller is the single authority on which screen renders. It combines
// the onboarding flag, session presence, profile status and wizard mode;
// the first matching rule wins.
//
// Wizard mode is meaningful only without a session, profile status only
// with one. Whenever session presence flips, the other state space resets.
type Controller struct {
	mu            sync.Mutex
	session       *model.Session
	profileStatus model.ProfileStatus
	busy          bool

	gate     *onboarding.Gate
	wizard   *wizard.Controller
	auth     backend.AuthClient
	profiles *profile.Service
	logger   *slog.Logger

	unsubscribe func()
}

func NewController(
	gate *onboarding.Gate,
	wiz *wizard.Controller,
	auth backend.AuthClient,
	profiles *profile.Service,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		profileStatus: model.ProfileStatusIdle,
		gate:          gate,
		wizard:        wiz,
		auth:          auth,
		profiles:      profiles,
		logger:        logger,
	}
}

// Start loads the current session and subscribes to session changes.
func (c *Controller) Start(ctx context.Context) error {
	session, err := c.auth.GetSession(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	c.unsubscribe = c.auth.OnSessionChange(c.handleSessionChange)
	return nil
}

// Close unsubscribes from session changes.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Wizard exposes the signup wizard for the unauthenticated operations.
func (c *Controller) Wizard() *wizard.Controller {
	return c.wizard
}

// ProfileStatus returns the current profile status.
func (c *Controller) ProfileStatus() model.ProfileStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profileStatus
}

// Resolve computes the screen to render. A session present with an idle
// profile status triggers the existence check in the background and
// resolves to loading until it lands.
func (c *Controller) Resolve(ctx context.Context) (Resolution, error) {
	seen, err := c.gate.HasSeen(ctx)
	if err != nil {
		return Resolution{}, err
	}
	if !seen {
		return Resolution{Screen: ScreenOnboarding}, nil
	}

	// Re-derive the session on every resolution; expiry does not push a
	// change notification.
	session, err := c.auth.GetSession(ctx)
	if err != nil {
		return Resolution{}, err
	}
	c.refreshSession(session)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return Resolution{Screen: screenForMode(c.wizard.Mode())}, nil
	}

	switch c.profileStatus {
	case model.ProfileStatusIdle:
		c.profileStatus = model.ProfileStatusLoading
		go c.runCheck(context.WithoutCancel(ctx), c.session.UserID)
		return Resolution{Screen: ScreenLoading}, nil
	case model.ProfileStatusLoading:
		return Resolution{Screen: ScreenLoading}, nil
	case model.ProfileStatusNeedsProfile:
		prefill := c.prefillLocked()
		if c.session.Meta(model.MetaRole) == string(model.RoleParent) {
			return Resolution{Screen: ScreenChildProfileSetup, Prefill: prefill}, nil
		}
		return Resolution{Screen: ScreenPlayerProfileSetup, Prefill: prefill}, nil
	}
	return Resolution{Screen: ScreenHome}, nil
}

// FinishOnboarding persists the onboarding-seen flag.
func (c *Controller) FinishOnboarding(ctx context.Context) error {
	return c.gate.MarkSeen(ctx)
}

// SignIn authenticates against the auth backend. State updates arrive via
// the session-change subscription.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	_, err := c.auth.SignIn(ctx, email, password)
	return err
}

// SignOut clears the current session.
func (c *Controller) SignOut(ctx context.Context) error {
	return c.auth.SignOut(ctx)
}

// SubmitPlayerProfile saves the authenticated player's profile and marks
// the profile present. Identity fields come from session metadata, falling
// back to account data captured during signup in this run.
//
// At most one profile upsert is in flight at a time; a second call while
// one is running fails with ErrActionInFlight rather than racing it.
func (c *Controller) SubmitPlayerProfile(ctx context.Context, form wizard.PlayerProfileForm) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return model.ErrNoSession
	}
	if c.busy {
		c.mu.Unlock()
		return model.ErrActionInFlight
	}
	c.busy = true
	account := *c.prefillLocked()
	c.mu.Unlock()
	defer c.endSubmit()

	parsed, err := form.Parse()
	if err != nil {
		return err
	}

	if err := c.profiles.SavePlayerProfile(ctx, account, parsed); err != nil {
		return err
	}

	c.markHasProfile(account.UserID)
	return nil
}

// SubmitChildProfile saves a child profile under the authenticated
// guardian's account and marks the profile present. There is no
// unauthenticated path: the parent confirms their email and signs in before
// the child profile screen exists. The wizard is placed on that screen here
// so its transition bookkeeping holds.
func (c *Controller) SubmitChildProfile(ctx context.Context, form wizard.ChildProfileForm) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return model.ErrNoSession
	}
	if c.busy {
		c.mu.Unlock()
		return model.ErrActionInFlight
	}
	c.busy = true
	guardian := model.AccountData{
		UserID: c.session.UserID,
		Email:  c.session.Email,
	}
	c.mu.Unlock()
	defer c.endSubmit()

	c.wizard.EnterChildProfileSetup()
	if err := c.wizard.SubmitChildProfile(ctx, guardian, form); err != nil {
		return err
	}

	c.markHasProfile(guardian.UserID)
	return nil
}

// SavePlayerProfile routes a player profile submission: through the wizard
// while unauthenticated (post-signup setup step), directly against the
// session otherwise (returning user without a profile row).
func (c *Controller) SavePlayerProfile(ctx context.Context, form wizard.PlayerProfileForm) error {
	if c.hasSession() {
		return c.SubmitPlayerProfile(ctx, form)
	}
	return c.wizard.SubmitPlayerProfile(ctx, form)
}

func (c *Controller) endSubmit() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// Profile returns the authenticated user's profile row.
func (c *Controller) Profile(ctx context.Context) (*model.Profile, error) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return nil, model.ErrNoSession
	}
	userID := c.session.UserID
	c.mu.Unlock()

	return c.profiles.Get(ctx, userID)
}

func (c *Controller) hasSession() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

func (c *Controller) handleSessionChange(session *model.Session) {
	c.mu.Lock()
	c.session = session
	c.profileStatus = model.ProfileStatusIdle
	c.mu.Unlock()

	// Wizard state is meaningless alongside a session and must not leak
	// into the next unauthenticated run.
	if session == nil {
		c.wizard.ReturnToLogin()
	}
}

// refreshSession applies a freshly read session if its identity differs
// from the stored one, e.g. after expiry.
func (c *Controller) refreshSession(session *model.Session) {
	c.mu.Lock()
	if sessionIdentity(session) == sessionIdentity(c.session) {
		c.mu.Unlock()
		return
	}
	c.session = session
	c.profileStatus = model.ProfileStatusIdle
	c.mu.Unlock()

	if session == nil {
		c.wizard.ReturnToLogin()
	}
}

// runCheck performs the profile-existence check for the given user. The
// result is keyed to the user id it was issued for: if the session changed
// while the check was in flight, the stale result is discarded.
func (c *Controller) runCheck(ctx context.Context, userID model.UserID) {
	status := c.profiles.Check(ctx, userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.session.UserID != userID || c.profileStatus != model.ProfileStatusLoading {
		c.logger.DebugContext(ctx, "discarding stale profile check result",
			slog.String("user_id", string(userID)))
		return
	}
	c.profileStatus = status
}

func (c *Controller) markHasProfile(userID model.UserID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && c.session.UserID == userID {
		c.profileStatus = model.ProfileStatusHasProfile
	}
}

// prefillLocked builds the profile-setup prefill. Caller holds c.mu and
// has checked c.session is present.
func (c *Controller) prefillLocked() *model.AccountData {
	prefill := &model.AccountData{
		FullName:    c.session.Meta(model.MetaFullName),
		DateOfBirth: c.session.Meta(model.MetaDateOfBirth),
		Email:       c.session.Email,
		UserID:      c.session.UserID,
	}
	if account := c.wizard.Account(); account != nil {
		if prefill.FullName == "" {
			prefill.FullName = account.FullName
		}
		if prefill.DateOfBirth == "" {
			prefill.DateOfBirth = account.DateOfBirth
		}
	}
	return prefill
}

// sessionIdentity collapses a session to the identity it carries; nil and
// expired sessions read as no identity.
func sessionIdentity(session *model.Session) model.UserID {
	if session == nil {
		return ""
	}
	return session.UserID
}

func screenForMode(mode model.WizardMode) Screen {
	switch mode {
	case model.ModeSelectAccountType:
		return ScreenSelectAccountType
	case model.ModePlayerSignupAccount:
		return ScreenPlayerSignupAccount
	case model.ModeParentSignupAccount:
		return ScreenParentSignupAccount
	case model.ModePlayerProfileSetup:
		return ScreenPlayerProfileSetup
	case model.ModeChildProfileSetup:
		return ScreenChildProfileSetup
	case model.ModeSignupComplete:
		return ScreenSignupComplete
	}
	return ScreenLogin
}
