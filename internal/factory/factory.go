package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/draftelite/onboarding-go/internal/backend"
	backendmem "github.com/draftelite/onboarding-go/internal/backend/memory"
	backendredis "github.com/draftelite/onboarding-go/internal/backend/redisstore"
	"github.com/draftelite/onboarding-go/internal/dependencies/clock"
	"github.com/draftelite/onboarding-go/internal/services/age"
	"github.com/draftelite/onboarding-go/internal/services/flow"
	"github.com/draftelite/onboarding-go/internal/services/onboarding"
	"github.com/draftelite/onboarding-go/internal/services/profile"
	"github.com/draftelite/onboarding-go/internal/services/wizard"
	"github.com/draftelite/onboarding-go/internal/storage"
	storagemem "github.com/draftelite/onboarding-go/internal/storage/memory"
	storageredis "github.com/draftelite/onboarding-go/internal/storage/redisstore"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Stores
	Flags    storage.FlagStore
	Profiles backend.ProfileStore

	// External dependencies
	Auth  backend.AuthClient
	Clock clock.Clock

	// Services
	AgePolicy      *age.Policy
	ProfileService *profile.Service
	Flows          *flow.Manager

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the flag/profile storage backend ("memory" or
	// "redis"). If empty, defaults to "memory". The auth backend is
	// in-process either way.
	StorageType string
	// RedisConfig holds flag-store Redis settings (required if StorageType is "redis")
	RedisConfig *storageredis.Config
	// ProfileRedisConfig holds profile-store Redis settings (required if StorageType is "redis")
	ProfileRedisConfig *backendredis.Config
	// AuthConfig holds configuration for the in-process auth backend (optional)
	AuthConfig backendmem.AuthConfig
	// FailClosedAgeGate treats an unparseable date of birth as under 18,
	// blocking signup instead of letting it through.
	FailClosedAgeGate bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	clk := clock.New()

	var flags storage.FlagStore
	var profiles backend.ProfileStore

	switch storageType {
	case StorageTypeMemory:
		flags = storagemem.New()
		profiles = backendmem.NewProfiles()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil || cfg.ProfileRedisConfig == nil {
			return nil, errors.New("RedisConfig and ProfileRedisConfig required when StorageType is redis")
		}
		redisFlags, err := storageredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		redisProfiles, err := backendredis.New(*cfg.ProfileRedisConfig)
		if err != nil {
			return nil, err
		}
		flags = redisFlags
		profiles = redisProfiles
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	auth := backendmem.NewAuth(clk, cfg.AuthConfig)

	return newWithDependencies(flags, auth, profiles, clk, cfg.FailClosedAgeGate, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	flags storage.FlagStore,
	auth backend.AuthClient,
	profiles backend.ProfileStore,
	clk clock.Clock,
	failClosedAgeGate bool,
	logger *slog.Logger,
) *App {
	agePolicy := age.NewPolicy(clk)
	agePolicy.InvalidIsAdult = !failClosedAgeGate

	profileService := profile.NewService(profiles, clk, logger)

	flows := flow.NewManager(func(deviceID string) *flow.Controller {
		gate := onboarding.NewGateWithKey(flags, onboarding.SeenKey+":"+deviceID)
		wiz := wizard.NewController(auth, profileService, agePolicy, logger)
		return flow.NewController(gate, wiz, auth, profileService, logger)
	})

	return &App{
		Flags:          flags,
		Profiles:       profiles,
		Auth:           auth,
		Clock:          clk,
		AgePolicy:      agePolicy,
		ProfileService: profileService,
		Flows:          flows,
		Logger:         logger,
	}
}
