package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/draftelite/onboarding-go/internal/backend"
	"github.com/draftelite/onboarding-go/internal/dependencies/clock"
	"github.com/draftelite/onboarding-go/internal/model"
)

// AuthConfig holds configuration for the in-process auth backend.
type AuthConfig struct {
	SessionDuration time.Duration
	// ResendInterval throttles confirmation email resends per client.
	ResendInterval time.Duration
}

// DefaultAuthConfig returns default auth configuration
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		SessionDuration: 24 * time.Hour,
		ResendInterval:  30 * time.Second,
	}
}

type account struct {
	user         model.User
	passwordHash string
}

// Auth is an in-process implementation of the auth contract. It stands in
// for the hosted service in tests and self-contained deployments: accounts
// are held in memory with bcrypt password hashes, and session changes fan
// out to subscribers the way the hosted client pushes them.
type Auth struct {
	clock clock.Clock
	cfg   AuthConfig

	mu          sync.RWMutex
	accounts    map[string]*account // keyed by lowercase email
	session     *model.Session
	subscribers map[int]func(*model.Session)
	nextSubID   int

	resendLimiter *rate.Limiter
}

// NewAuth creates an in-process auth backend
func NewAuth(clk clock.Clock, cfg AuthConfig) *Auth {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultAuthConfig().SessionDuration
	}
	if cfg.ResendInterval == 0 {
		cfg.ResendInterval = DefaultAuthConfig().ResendInterval
	}
	return &Auth{
		clock:         clk,
		cfg:           cfg,
		accounts:      make(map[string]*account),
		subscribers:   make(map[int]func(*model.Session)),
		resendLimiter: rate.NewLimiter(rate.Every(cfg.ResendInterval), 1),
	}
}

// Ensure Auth implements the contract
var _ backend.AuthClient = (*Auth)(nil)

func (a *Auth) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*model.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[key]; exists {
		return nil, model.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}

	user := model.User{
		ID:        model.UserID(uuid.NewString()),
		Email:     key,
		Metadata:  meta,
		CreatedAt: a.clock.Now(),
	}

	a.accounts[key] = &account{user: user, passwordHash: string(hash)}

	return &user, nil
}

func (a *Auth) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	a.mu.Lock()

	acct, ok := a.accounts[key]
	if !ok {
		a.mu.Unlock()
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(password)); err != nil {
		a.mu.Unlock()
		return nil, model.ErrInvalidCredentials
	}

	session := &model.Session{
		UserID:    acct.user.ID,
		Email:     acct.user.Email,
		Metadata:  acct.user.Metadata,
		ExpiresAt: a.clock.Now().Add(a.cfg.SessionDuration),
	}
	a.session = session
	a.mu.Unlock()

	a.notify(session)

	return session, nil
}

func (a *Auth) SignOut(ctx context.Context) error {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()

	a.notify(nil)
	return nil
}

func (a *Auth) ResetPasswordForEmail(ctx context.Context, email string) error {
	// No mail transport in-process; succeed for known and unknown emails
	// alike so the endpoint does not leak which addresses have accounts.
	return nil
}

func (a *Auth) ResendSignup(ctx context.Context, email string) error {
	if !a.resendLimiter.Allow() {
		return model.ErrResendThrottled
	}

	key := strings.ToLower(strings.TrimSpace(email))

	a.mu.RLock()
	defer a.mu.RUnlock()

	if _, ok := a.accounts[key]; !ok {
		return model.ErrInvalidCredentials
	}
	return nil
}

func (a *Auth) GetSession(ctx context.Context) (*model.Session, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return nil, nil
	}
	if a.clock.Now().After(a.session.ExpiresAt) {
		return nil, nil
	}
	return a.session, nil
}

func (a *Auth) OnSessionChange(fn func(*model.Session)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subscribers, id)
	}
}

// notify fans a session change out to subscribers. The lock is not held
// during callbacks so subscribers may call back into the client.
func (a *Auth) notify(session *model.Session) {
	a.mu.RLock()
	fns := make([]func(*model.Session), 0, len(a.subscribers))
	for _, fn := range a.subscribers {
		fns = append(fns, fn)
	}
	a.mu.RUnlock()

	for _, fn := range fns {
		fn(session)
	}
}

// SetSessionMetadata updates metadata on the account and live session, the
// way the hosted service reflects user_metadata updates.
func (a *Auth) SetSessionMetadata(key, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return
	}
	if a.session.Metadata == nil {
		a.session.Metadata = make(map[string]string)
	}
	a.session.Metadata[key] = value
}
