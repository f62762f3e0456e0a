package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/model"
)

// Config holds Redis connection settings for the profile store.
type Config struct {
	URL          string
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for the profile store.
func DefaultConfig() Config {
	return Config{
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

// Profiles is a Redis-backed implementation of the profile store, used when
// the platform runs self-hosted instead of against the hosted backend.
type Profiles struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis profile store
func New(cfg Config) (*Profiles, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Profiles{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis profile store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Profiles {
	return &Profiles{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (p *Profiles) Close() error {
	return p.client.Close()
}

// Ensure Profiles implements the contract
var _ backend.ProfileStore = (*Profiles)(nil)

func profileKey(userID model.UserID) string {
	return "profile:" + string(userID)
}

func (p *Profiles) Upsert(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	// One key per user id, so repeated submits overwrite the same row.
	return p.client.Set(ctx, profileKey(profile.UserID), data, 0).Err()
}

func (p *Profiles) GetByUserID(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	data, err := p.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var profile model.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
