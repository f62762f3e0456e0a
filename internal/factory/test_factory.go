package factory

import (
	"time"

	backendmem "github.com/draftelite/onboarding-go/internal/backend/memory"
	"github.com/draftelite/onboarding-go/internal/dependencies/mocks"
	storagemem "github.com/draftelite/onboarding-go/internal/storage/memory"
	"github.com/draftelite/onboarding-go/internal/testutil"
)

// TestApp wraps App with test-specific dependencies exposed
type TestApp struct {
	*App
	MockClock *mocks.MockClock
	MemAuth   *backendmem.Auth
	MemStore  *backendmem.Profiles
}

// NewTestApp creates an App with memory storage and a frozen clock
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()

	flags := storagemem.New()
	auth := backendmem.NewAuth(mockClock, backendmem.DefaultAuthConfig())
	profiles := backendmem.NewProfiles()

	app := newWithDependencies(flags, auth, profiles, mockClock, false, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MemAuth:   auth,
		MemStore:  profiles,
	}
}
