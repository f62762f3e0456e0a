package storage

import "context"

// FlagStore is the device-local key-value store used for persisted UI flags
// such as the onboarding-seen marker. Get returns model.ErrFlagNotFound for
// an absent key.
type FlagStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
