package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"tecstore/internal/domain"
	"tecstore/internal/store"
)

// Service manages the registered user mapping, the per-user profiles and
// the single logged-in session marker. Emails are normalized (trimmed,
// lowercased) before any lookup, so account keys are case-insensitive.
//
// Passwords are compared as plain strings by contract; see domain.User.
type Service struct {
	mu     sync.Mutex
	store  store.Store
	logger *logrus.Logger
}

func New(st store.Store, logger *logrus.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Register creates an account for the normalized email and opens a session
// for it. Registering an email that already has an account fails with
// domain.ErrDuplicateAccount.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	e := domain.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return "", err
	}
	if _, exists := users[e]; exists {
		return "", domain.ErrDuplicateAccount
	}
	users[e] = domain.User{Password: password}
	if err := store.WriteJSON(ctx, s.store, store.UsersKey, users); err != nil {
		return "", fmt.Errorf("persist users: %w", err)
	}
	if err := s.store.Set(ctx, store.SessionKey, e); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}
	s.logger.WithField("email", e).Info("account registered")
	return e, nil
}

// Login validates credentials against the stored user mapping and opens a
// session. It fails with domain.ErrNoSuchAccount or domain.ErrWrongPassword.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	e := domain.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return "", err
	}
	u, exists := users[e]
	if !exists {
		return "", domain.ErrNoSuchAccount
	}
	if u.Password != password {
		return "", domain.ErrWrongPassword
	}
	if err := s.store.Set(ctx, store.SessionKey, e); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}
	return e, nil
}

// Logout clears the session marker.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, store.SessionKey)
}

// CurrentSession returns the normalized email of the logged-in user, or
// false when no session is active.
func (s *Service) CurrentSession(ctx context.Context) (string, bool, error) {
	email, ok, err := s.store.Get(ctx, store.SessionKey)
	if err != nil {
		return "", false, err
	}
	return email, ok && email != "", nil
}

// SaveProfile upserts the profile entry for the normalized email. No
// validation happens here; the registration validator runs beforehand.
func (s *Service) SaveProfile(ctx context.Context, email string, profile domain.Profile) error {
	e := domain.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := map[string]domain.Profile{}
	if err := store.ReadJSON(ctx, s.store, store.ProfilesKey, &profiles); err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	profiles[e] = profile
	if err := store.WriteJSON(ctx, s.store, store.ProfilesKey, profiles); err != nil {
		return fmt.Errorf("persist profiles: %w", err)
	}
	return nil
}

// Profile returns the stored profile for the normalized email, or
// domain.ErrNotFound when the account never saved one.
func (s *Service) Profile(ctx context.Context, email string) (domain.Profile, error) {
	e := domain.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := map[string]domain.Profile{}
	if err := store.ReadJSON(ctx, s.store, store.ProfilesKey, &profiles); err != nil {
		return domain.Profile{}, fmt.Errorf("load profiles: %w", err)
	}
	p, ok := profiles[e]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *Service) loadUsers(ctx context.Context) (map[string]domain.User, error) {
	users := map[string]domain.User{}
	if err := store.ReadJSON(ctx, s.store, store.UsersKey, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}
