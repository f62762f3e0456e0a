package memory

import (
	"context"
	"sync"

	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/model"
)

// Profiles is an in-memory implementation of the profile store
type Profiles struct {
	mu       sync.RWMutex
	profiles map[model.UserID]*model.Profile
}

// NewProfiles creates an in-memory profile store
func NewProfiles() *Profiles {
	return &Profiles{
		profiles: make(map[model.UserID]*model.Profile),
	}
}

// Ensure Profiles implements the contract
var _ backend.ProfileStore = (*Profiles)(nil)

func (p *Profiles) Upsert(ctx context.Context, profile *model.Profile) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Conflict key is the user id: a second submit replaces the row.
	copied := *profile
	p.profiles[profile.UserID] = &copied
	return nil
}

func (p *Profiles) GetByUserID(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	profile, ok := p.profiles[userID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

// Count returns the number of stored profile rows (test helper).
func (p *Profiles) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.profiles)
}
