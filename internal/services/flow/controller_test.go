package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/draftelite/onboarding-go/internal/backend"
	backendmem "github.com/draftelite/onboarding-go/internal/backend/memory"
	"github.com/draftelite/onboarding-go/internal/dependencies/mocks"
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/age"
	"github.com/draftelite/onboarding-go/internal/services/onboarding"
	"github.com/draftelite/onboarding-go/internal/services/profile"
	"github.com/draftelite/onboarding-go/internal/services/wizard"
	storagemem "github.com/draftelite/onboarding-go/internal/storage/memory"
	"github.com/draftelite/onboarding-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	clock      *mocks.MockClock
	auth       *backendmem.Auth
	store      *backendmem.Profiles
	gate       *onboarding.Gate
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.auth = backendmem.NewAuth(s.clock, backendmem.DefaultAuthConfig())
	s.store = backendmem.NewProfiles()
	s.gate = onboarding.NewGate(storagemem.New())
	s.ctx = context.Background()

	s.controller = s.newController(s.store)
	s.Require().NoError(s.controller.Start(s.ctx))
}

func (s *ControllerSuite) TearDownTest() {
	s.controller.Close()
}

func (s *ControllerSuite) newController(store backend.ProfileStore) *Controller {
	logger := testutil.NopLogger()
	profiles := profile.NewService(store, s.clock, logger)
	wiz := wizard.NewController(s.auth, profiles, age.NewPolicy(s.clock), logger)
	return NewController(s.gate, wiz, s.auth, profiles, logger)
}

func (s *ControllerSuite) finishOnboarding() {
	s.Require().NoError(s.controller.FinishOnboarding(s.ctx))
}

// signInAs creates an account with the given metadata and signs in.
func (s *ControllerSuite) signInAs(email string, metadata map[string]string) model.UserID {
	user, err := s.auth.SignUp(s.ctx, email, "password123", metadata)
	s.Require().NoError(err)
	_, err = s.auth.SignIn(s.ctx, email, "password123")
	s.Require().NoError(err)
	return user.ID
}

func (s *ControllerSuite) resolve() Resolution {
	resolution, err := s.controller.Resolve(s.ctx)
	s.Require().NoError(err)
	return resolution
}

// resolveSettled resolves until the profile check has landed.
func (s *ControllerSuite) resolveSettled() Resolution {
	s.Eventually(func() bool {
		return s.resolve().Screen != ScreenLoading
	}, time.Second, 5*time.Millisecond)
	return s.resolve()
}

func (s *ControllerSuite) TestOnboardingShownFirst() {
	s.Equal(ScreenOnboarding, s.resolve().Screen)

	s.finishOnboarding()
	s.Equal(ScreenLogin, s.resolve().Screen)
}

func (s *ControllerSuite) TestDelegatesToWizardWithoutSession() {
	s.finishOnboarding()

	s.Require().NoError(s.controller.Wizard().RequestSignup())
	s.Equal(ScreenSelectAccountType, s.resolve().Screen)

	s.Require().NoError(s.controller.Wizard().ChooseAccountType(model.AccountTypePlayer))
	s.Equal(ScreenPlayerSignupAccount, s.resolve().Screen)
}

func (s *ControllerSuite) TestSessionWithoutProfileLandsOnPlayerSetup() {
	s.finishOnboarding()
	userID := s.signInAs("alex@example.com", map[string]string{
		model.MetaFullName:    "Alex Doe",
		model.MetaDateOfBirth: "2000-01-15",
		model.MetaRole:        string(model.RolePlayer),
	})

	s.Equal(ScreenLoading, s.resolve().Screen)

	resolution := s.resolveSettled()
	s.Equal(ScreenPlayerProfileSetup, resolution.Screen)
	s.Require().NotNil(resolution.Prefill)
	s.Equal("Alex Doe", resolution.Prefill.FullName)
	s.Equal("2000-01-15", resolution.Prefill.DateOfBirth)
	s.Equal("alex@example.com", resolution.Prefill.Email)
	s.Equal(userID, resolution.Prefill.UserID)
}

func (s *ControllerSuite) TestParentWithoutProfileLandsOnChildSetup() {
	s.finishOnboarding()
	s.signInAs("jo@example.com", map[string]string{
		model.MetaFullName: "Jo Doe",
		model.MetaRole:     string(model.RoleParent),
	})

	s.Equal(ScreenChildProfileSetup, s.resolveSettled().Screen)
}

func (s *ControllerSuite) TestSessionWithProfileLandsOnHome() {
	s.finishOnboarding()
	userID := s.signInAs("alex@example.com", nil)
	s.Require().NoError(s.store.Upsert(s.ctx, &model.Profile{
		UserID: userID,
		Role:   model.RolePlayer,
		Status: model.ProfileStatusPending,
	}))

	s.Equal(ScreenHome, s.resolveSettled().Screen)
}

func (s *ControllerSuite) TestSubmitPlayerProfileMarksHasProfile() {
	s.finishOnboarding()
	userID := s.signInAs("alex@example.com", map[string]string{
		model.MetaFullName:    "Alex Doe",
		model.MetaDateOfBirth: "2000-01-15",
	})
	s.Equal(ScreenPlayerProfileSetup, s.resolveSettled().Screen)

	err := s.controller.SubmitPlayerProfile(s.ctx, wizard.PlayerProfileForm{
		Position:      "Defender",
		Location:      "Belfast",
		Nationality:   "Irish",
		PreferredFoot: "Right",
	})
	s.Require().NoError(err)

	s.Equal(model.ProfileStatusHasProfile, s.controller.ProfileStatus())
	s.Equal(ScreenHome, s.resolve().Screen)

	saved, err := s.store.GetByUserID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal("Alex Doe", saved.FullName)
	s.Equal(model.RolePlayer, saved.Role)
}

func (s *ControllerSuite) TestSubmitChildProfileMarksHasProfile() {
	s.finishOnboarding()
	userID := s.signInAs("jo@example.com", map[string]string{
		model.MetaRole: string(model.RoleParent),
	})
	s.Equal(ScreenChildProfileSetup, s.resolveSettled().Screen)

	err := s.controller.SubmitChildProfile(s.ctx, wizard.ChildProfileForm{
		FullName:      "Sam Doe",
		DateOfBirth:   "05/03/2012",
		Position:      "Winger",
		Location:      "Derry",
		Nationality:   "Irish",
		PreferredFoot: "Left",
	})
	s.Require().NoError(err)

	s.Equal(ScreenHome, s.resolve().Screen)

	saved, err := s.store.GetByUserID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(model.RoleChild, saved.Role)
	s.True(saved.IsUnder18)
	// The row's contact address is the guardian's, not the child's.
	s.Equal("jo@example.com", saved.Email)
}

func (s *ControllerSuite) TestSubmitWithoutSessionFails() {
	s.finishOnboarding()
	err := s.controller.SubmitPlayerProfile(s.ctx, wizard.PlayerProfileForm{})
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *ControllerSuite) TestPrefillReflectsSessionMetadataUpdates() {
	s.finishOnboarding()
	s.signInAs("alex@example.com", map[string]string{
		model.MetaFullName: "Alex Doe",
	})
	s.Equal(ScreenPlayerProfileSetup, s.resolveSettled().Screen)

	s.auth.SetSessionMetadata(model.MetaFullName, "Alexandra Doe")
	s.auth.SetSessionMetadata(model.MetaDateOfBirth, "2000-01-15")

	resolution := s.resolve()
	s.Require().NotNil(resolution.Prefill)
	s.Equal("Alexandra Doe", resolution.Prefill.FullName)
	s.Equal("2000-01-15", resolution.Prefill.DateOfBirth)
}

func (s *ControllerSuite) TestSignOutResetsToLogin() {
	s.finishOnboarding()
	s.signInAs("alex@example.com", nil)
	s.resolveSettled()

	s.Require().NoError(s.controller.SignOut(s.ctx))

	s.Equal(model.ProfileStatusIdle, s.controller.ProfileStatus())
	s.Equal(ScreenLogin, s.resolve().Screen)
}

func (s *ControllerSuite) TestSessionExpiryResetsProfileStatus() {
	s.finishOnboarding()
	s.signInAs("alex@example.com", nil)
	s.resolveSettled()
	s.Equal(model.ProfileStatusNeedsProfile, s.controller.ProfileStatus())

	s.clock.Advance(25 * time.Hour)

	s.Equal(ScreenLogin, s.resolve().Screen)
	s.Equal(model.ProfileStatusIdle, s.controller.ProfileStatus())
}

// slowUpsertStore parks profile writes until released so a second
// submission can arrive while the first is still in flight.
type slowUpsertStore struct {
	backend.ProfileStore
	entered chan struct{}
	release chan struct{}
}

func (b *slowUpsertStore) Upsert(ctx context.Context, profile *model.Profile) error {
	close(b.entered)
	<-b.release
	return b.ProfileStore.Upsert(ctx, profile)
}

func (s *ControllerSuite) TestConcurrentSubmitRejectedWhileFirstInFlight() {
	slow := &slowUpsertStore{
		ProfileStore: s.store,
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	controller := s.newController(slow)
	s.Require().NoError(controller.Start(s.ctx))
	defer controller.Close()

	s.finishOnboarding()
	s.signInAs("alex@example.com", map[string]string{
		model.MetaFullName:    "Alex Doe",
		model.MetaDateOfBirth: "2000-01-15",
	})
	s.Eventually(func() bool {
		resolution, err := controller.Resolve(s.ctx)
		s.Require().NoError(err)
		return resolution.Screen != ScreenLoading
	}, time.Second, 5*time.Millisecond)

	form := wizard.PlayerProfileForm{
		Position:      "Defender",
		Location:      "Belfast",
		Nationality:   "Irish",
		PreferredFoot: "Right",
	}

	done := make(chan error, 1)
	go func() {
		done <- controller.SubmitPlayerProfile(s.ctx, form)
	}()
	<-slow.entered

	// Both submit paths share the single in-flight slot.
	s.ErrorIs(controller.SubmitPlayerProfile(s.ctx, form), model.ErrActionInFlight)
	s.ErrorIs(controller.SubmitChildProfile(s.ctx, wizard.ChildProfileForm{}), model.ErrActionInFlight)

	close(slow.release)
	s.Require().NoError(<-done)
	s.Equal(1, s.store.Count())
}

// blockingStore parks profile reads until released, standing in for a slow
// backend while a sign-out races the check.
type blockingStore struct {
	backend.ProfileStore
	release chan struct{}
}

func (b *blockingStore) GetByUserID(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	<-b.release
	return nil, model.ErrProfileNotFound
}

func (s *ControllerSuite) TestSignOutDiscardsPendingCheckResult() {
	blocking := &blockingStore{ProfileStore: s.store, release: make(chan struct{})}
	controller := s.newController(blocking)
	s.Require().NoError(controller.Start(s.ctx))
	defer controller.Close()

	s.finishOnboarding()
	s.signInAs("alex@example.com", nil)

	resolution, err := controller.Resolve(s.ctx)
	s.Require().NoError(err)
	s.Equal(ScreenLoading, resolution.Screen)

	s.Require().NoError(controller.SignOut(s.ctx))
	close(blocking.release)

	// The released result belongs to the signed-out session and must not
	// surface.
	time.Sleep(50 * time.Millisecond)
	s.Equal(model.ProfileStatusIdle, controller.ProfileStatus())

	resolution, err = controller.Resolve(s.ctx)
	s.Require().NoError(err)
	s.Equal(ScreenLogin, resolution.Screen)
}
