package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	backendmem "github.com/draftelite/onboarding-go/internal/backend/memory"
	"github.com/draftelite/onboarding-go/internal/dependencies/mocks"
	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/services/age"
	"github.com/draftelite/onboarding-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	store   *backendmem.Profiles
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.store = backendmem.NewProfiles()
	s.service = NewService(s.store, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) account() model.AccountData {
	return model.AccountData{
		FullName:    "Alex Doe",
		DateOfBirth: "2000-01-15",
		Email:       "alex@example.com",
		UserID:      "user-1",
	}
}

func (s *ServiceSuite) TestSavePlayerProfile() {
	err := s.service.SavePlayerProfile(s.ctx, s.account(), PlayerForm{
		Position:      model.PositionForward,
		Location:      "Belfast",
		Nationality:   "Irish",
		ClubName:      "Cliftonville",
		Height:        "180",
		Weight:        "75",
		PreferredFoot: model.FootRight,
		HighlightLink: "https://example.com/reel",
	})
	s.Require().NoError(err)

	got, err := s.store.GetByUserID(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(model.RolePlayer, got.Role)
	s.Equal("Alex Doe", got.FullName)
	s.Equal("2000-01-15", got.DateOfBirth)
	s.Equal("alex@example.com", got.Email)
	s.False(got.IsUnder18)
	s.Equal(model.ProfileStatusPending, got.Status)
	s.Require().NotNil(got.HeightCm)
	s.Equal(180, *got.HeightCm)
	s.Require().NotNil(got.WeightKg)
	s.Equal(75, *got.WeightKg)
	s.Equal(s.clock.Now(), got.UpdatedAt)
}

func (s *ServiceSuite) TestSavePlayerProfileDropsNonNumericMeasurements() {
	err := s.service.SavePlayerProfile(s.ctx, s.account(), PlayerForm{
		Position:      model.PositionDefender,
		Location:      "Belfast",
		Nationality:   "Irish",
		Height:        "tall",
		Weight:        "",
		PreferredFoot: model.FootLeft,
	})
	s.Require().NoError(err)

	got, err := s.store.GetByUserID(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Nil(got.HeightCm)
	s.Nil(got.WeightKg)
}

func (s *ServiceSuite) TestSaveChildProfile() {
	guardian := model.AccountData{UserID: "parent-1", Email: "jo@example.com"}
	err := s.service.SaveChildProfile(s.ctx, guardian, ChildForm{
		FullName:      "Sam Doe",
		DateOfBirth:   age.DateOfBirth{Year: 2012, Month: time.March, Day: 5},
		Position:      model.PositionGoalkeeper,
		Location:      "Derry",
		Nationality:   "Irish",
		PreferredFoot: model.FootBoth,
	})
	s.Require().NoError(err)

	got, err := s.store.GetByUserID(s.ctx, "parent-1")
	s.Require().NoError(err)
	s.Equal(model.RoleChild, got.Role)
	s.Equal("Sam Doe", got.FullName)
	s.Equal("2012-03-05", got.DateOfBirth)
	s.True(got.IsUnder18)
	s.Equal("Irish", got.Country)
	s.Equal("Irish", got.Nationality)
	s.Equal("jo@example.com", got.Email)
	s.Equal(model.ProfileStatusPending, got.Status)
}

func (s *ServiceSuite) TestSaveIsIdempotentByUserID() {
	account := s.account()
	form := PlayerForm{Position: model.PositionWinger, PreferredFoot: model.FootLeft}

	s.Require().NoError(s.service.SavePlayerProfile(s.ctx, account, form))
	s.Require().NoError(s.service.SavePlayerProfile(s.ctx, account, form))

	s.Equal(1, s.store.Count())
}

func (s *ServiceSuite) TestCheckReportsHasProfile() {
	s.Require().NoError(s.service.SavePlayerProfile(s.ctx, s.account(), PlayerForm{
		Position:      model.PositionMidfielder,
		PreferredFoot: model.FootRight,
	}))

	s.Equal(model.ProfileStatusHasProfile, s.service.Check(s.ctx, "user-1"))
}

func (s *ServiceSuite) TestCheckReportsNeedsProfileWhenMissing() {
	s.Equal(model.ProfileStatusNeedsProfile, s.service.Check(s.ctx, "user-1"))
}

type failingStore struct{}

func (failingStore) Upsert(context.Context, *model.Profile) error { return errors.New("unreachable") }
func (failingStore) GetByUserID(context.Context, model.UserID) (*model.Profile, error) {
	return nil, errors.New("unreachable")
}

func (s *ServiceSuite) TestCheckFailsTowardSetupOnStoreError() {
	service := NewService(failingStore{}, s.clock, testutil.NopLogger())
	s.Equal(model.ProfileStatusNeedsProfile, service.Check(s.ctx, "user-1"))
}
