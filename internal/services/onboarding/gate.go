package onboarding

import (
	"context"
	"errors"

	"github.com/draftelite/onboarding-go/internal/model"
	"github.com/draftelite/onboarding-go/internal/storage"
)

// SeenKey is the flag-store key recording that the intro slides were shown.
// Once set it is never reset except by clearing the store externally.
const SeenKey = "draft-elite_has_seen_onboarding"

// Gate tracks whether the user has seen the introductory slides.
type Gate struct {
	flags storage.FlagStore
	key   string
}

// NewGate creates a Gate over the given flag store
func NewGate(flags storage.FlagStore) *Gate {
	return NewGateWithKey(flags, SeenKey)
}

// NewGateWithKey creates a Gate under a custom flag key, used to scope the
// onboarding flag per device when one store serves many clients.
func NewGateWithKey(flags storage.FlagStore, key string) *Gate {
	return &Gate{flags: flags, key: key}
}

// HasSeen reports whether onboarding has been acknowledged. An absent key
// means not seen; any other store error propagates.
func (g *Gate) HasSeen(ctx context.Context) (bool, error) {
	value, err := g.flags.Get(ctx, g.key)
	if err != nil {
		if errors.Is(err, model.ErrFlagNotFound) {
			return false, nil
		}
		return false, err
	}
	return value == "true", nil
}

// MarkSeen persists the onboarding-seen flag.
func (g *Gate) MarkSeen(ctx context.Context) error {
	return g.flags.Set(ctx, g.key, "true")
}
