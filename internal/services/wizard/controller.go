package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/age"
	"github.com/draftelite/onboarding-go/internal/services/profile"
)

// Controller runs the unauthenticated signup flow. It owns the current
// wizard mode and the transient account data captured between account
// creation and profile submission.
//
// At most one submission is in flight at a time; a second call while one is
// running fails with ErrActionInFlight rather than queueing.
type Controller struct {
	mu      sync.Mutex
	mode    model.WizardMode
	account *model.AccountData
	busy    bool

	auth     backend.AuthClient
	profiles *profile.Service
	ages     *age.Policy
	logger   *slog.Logger
}

func NewController(auth backend.AuthClient, profiles *profile.Service, ages *age.Policy, logger *slog.Logger) *Controller {
	return &Controller{
		mode:     model.ModeLogin,
		auth:     auth,
		profiles: profiles,
		ages:     ages,
		logger:   logger,
	}
}

// Mode returns the currently active wizard mode.
func (c *Controller) Mode() model.WizardMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Account returns a copy of the transient account data, or nil when none
// has been captured.
func (c *Controller) Account() *model.AccountData {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.account == nil {
		return nil
	}
	copied := *c.account
	return &copied
}

// RequestSignup moves from the login screen to account-type selection.
func (c *Controller) RequestSignup() error {
	return c.apply(model.EventRequestSignup)
}

// ChooseAccountType handles the account-type selection screen. Coach and
// scout registration is not available yet; choosing either surfaces that
// without leaving the selection screen.
func (c *Controller) ChooseAccountType(accountType model.AccountType) error {
	switch accountType {
	case model.AccountTypePlayer:
		return c.apply(model.EventChosePlayer)
	case model.AccountTypeParent:
		return c.apply(model.EventChoseParent)
	case model.AccountTypeCoach, model.AccountTypeScout:
		return model.ErrAccountComingSoon
	}
	return model.ErrUnknownAccountType
}

// ReturnToLogin aborts the wizard from any mode and discards transient
// account data.
func (c *Controller) ReturnToLogin() {
	_ = c.apply(model.EventReturnToLogin)
}

// EnterChildProfileSetup places the wizard on the child profile screen.
// There is no unauthenticated path into this mode; the session-aware shell
// calls this for an authenticated guardian whose child profile is missing.
func (c *Controller) EnterChildProfileSetup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = model.ModeChildProfileSetup
}

// CreatePlayerAccount validates the player account form, applies the age
// gate, and calls the auth backend.
//
// The age gate runs before any external call: an under-18 date of birth
// aborts locally, sends the wizard back to account-type selection, and
// returns ErrUnderagePlayer. Backend failures surface verbatim and leave the
// mode unchanged so the form can be resubmitted.
func (c *Controller) CreatePlayerAccount(ctx context.Context, form PlayerAccountForm) error {
	if err := c.begin(model.ModePlayerSignupAccount); err != nil {
		return err
	}
	defer c.end()

	form.trim()
	if err := form.validate(); err != nil {
		return err
	}

	if c.ages.IsUnder18(form.DateOfBirth, age.FormatISO) {
		_ = c.apply(model.EventPlayerUnderage)
		c.logger.InfoContext(ctx, "player signup blocked for under-18 date of birth")
		return model.ErrUnderagePlayer
	}

	user, err := c.auth.SignUp(ctx, form.Email, form.Password, map[string]string{
		model.MetaFullName:    form.FullName,
		model.MetaDateOfBirth: form.DateOfBirth,
		model.MetaRole:        string(model.RolePlayer),
		model.MetaAccountType: string(model.AccountTypePlayer),
		model.MetaIsUnder18:   "false",
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.account = &model.AccountData{
		FullName:    form.FullName,
		DateOfBirth: form.DateOfBirth,
		Email:       user.Email,
		UserID:      user.ID,
	}
	c.mode, _ = model.Transition(c.mode, model.EventAccountCreated)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "player account created",
		slog.String("user_id", string(user.ID)))
	return nil
}

// CreateParentAccount validates the parent account form and calls the auth
// backend with guardian role metadata. Parents finish the wizard here; the
// child profile is set up after email confirmation, under the authenticated
// session.
func (c *Controller) CreateParentAccount(ctx context.Context, form ParentAccountForm) error {
	if err := c.begin(model.ModeParentSignupAccount); err != nil {
		return err
	}
	defer c.end()

	form.trim()
	if err := form.validate(); err != nil {
		return err
	}

	user, err := c.auth.SignUp(ctx, form.Email, form.Password, map[string]string{
		model.MetaFullName:    form.FullName,
		model.MetaRole:        string(model.RoleParent),
		model.MetaAccountType: string(model.AccountTypeParent),
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.account = &model.AccountData{
		FullName: form.FullName,
		Email:    user.Email,
		UserID:   user.ID,
	}
	c.mode, _ = model.Transition(c.mode, model.EventAccountCreated)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "parent account created",
		slog.String("user_id", string(user.ID)))
	return nil
}

// SubmitPlayerProfile validates and saves the player's profile using the
// identity captured at account creation. A failed save keeps the wizard on
// the setup screen for retry; success finishes the wizard and discards the
// transient account data.
func (c *Controller) SubmitPlayerProfile(ctx context.Context, form PlayerProfileForm) error {
	if err := c.begin(model.ModePlayerProfileSetup); err != nil {
		return err
	}
	defer c.end()

	parsed, err := form.Parse()
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.account == nil {
		c.mu.Unlock()
		return fmt.Errorf("no account data captured for profile submission: %w", model.ErrNoSession)
	}
	account := *c.account
	c.mu.Unlock()

	if err := c.profiles.SavePlayerProfile(ctx, account, parsed); err != nil {
		c.logger.ErrorContext(ctx, "player profile save failed",
			slog.String("user_id", string(account.UserID)),
			slog.String("error", err.Error()))
		return err
	}

	c.mu.Lock()
	c.mode, _ = model.Transition(c.mode, model.EventProfileSaved)
	c.account = nil
	c.mu.Unlock()
	return nil
}

// SubmitChildProfile validates and saves a child profile under the given
// guardian identity. Save failures keep the screen in place for retry.
func (c *Controller) SubmitChildProfile(ctx context.Context, guardian model.AccountData, form ChildProfileForm) error {
	if err := c.begin(model.ModeChildProfileSetup); err != nil {
		return err
	}
	defer c.end()

	parsed, err := form.Parse()
	if err != nil {
		return err
	}

	if err := c.profiles.SaveChildProfile(ctx, guardian, parsed); err != nil {
		c.logger.ErrorContext(ctx, "child profile save failed",
			slog.String("user_id", string(guardian.UserID)),
			slog.String("error", err.Error()))
		return err
	}

	c.mu.Lock()
	c.mode, _ = model.Transition(c.mode, model.EventProfileSaved)
	c.account = nil
	c.mu.Unlock()
	return nil
}

// begin checks that the given mode is active and claims the single
// in-flight submission slot.
func (c *Controller) begin(mode model.WizardMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != mode {
		return fmt.Errorf("%w: %s is not the active mode", model.ErrInvalidTransition, mode)
	}
	if c.busy {
		return model.ErrActionInFlight
	}
	c.busy = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Controller) apply(event model.WizardEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := model.Transition(c.mode, event)
	if err != nil {
		return err
	}
	c.mode = next
	if event == model.EventReturnToLogin {
		c.account = nil
	}
	return nil
}
