package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"midnight-auction/internal/models"
	"midnight-auction/internal/notify"
	"midnight-auction/internal/repository"
	"midnight-auction/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys of the persisted session pair
const (
	TokenKey   = "accessToken"
	ProfileKey = "userProfile"
)

// LoginPath is where the user is sent after logging out
const LoginPath = "/login"

const (
	msgRestoreFailed  = "Could not restore your session. Please log in again."
	msgSessionExpired = "Your session has expired. Please log in again."
	msgLoggedOut      = "Logged out successfully"
)

// ErrIncompleteSession is returned when login is attempted without a token or profile name
var ErrIncompleteSession = errors.New("session requires both a token and a profile")

// Navigator moves the user to another entry point of the application
type Navigator func(path string)

// Store holds the authenticated user's token and profile and keeps them in sync with storage
type Store struct {
	mu         sync.RWMutex
	repo       repository.KVStore
	notifier   notify.Notifier
	navigate   Navigator
	now        func() time.Time
	token      string
	profile    *models.UserProfile
	isLoading  bool
	isNewLogin bool
}

// Option configures a Store
type Option func(*Store)

// WithNavigator sets the callback invoked on logout
func WithNavigator(n Navigator) Option {
	return func(s *Store) { s.navigate = n }
}

// WithClock overrides the clock used to check token expiry
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store. It stays loading until Restore is called.
func NewStore(repo repository.KVStore, notifier notify.Notifier, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		notifier:  notifier,
		navigate:  func(string) {},
		now:       time.Now,
		isLoading: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads the persisted session. Corrupt or expired data is cleared and the user
// is told to log in again; it never fails startup.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.isLoading = false }()

	token, hasToken, err := s.repo.Get(TokenKey)
	if err != nil {
		s.discardLocked(msgRestoreFailed, err)
		return
	}
	rawProfile, hasProfile, err := s.repo.Get(ProfileKey)
	if err != nil {
		s.discardLocked(msgRestoreFailed, err)
		return
	}
	if !hasToken || !hasProfile || token == "" {
		return
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(rawProfile), &profile); err != nil {
		s.discardLocked(msgRestoreFailed, fmt.Errorf("decode stored profile: %w", err))
		return
	}
	if profile.Name == "" {
		s.discardLocked(msgRestoreFailed, errors.New("stored profile has no name"))
		return
	}
	if exp, ok := tokenExpiry(token); ok && !exp.After(s.now()) {
		s.discardLocked(msgSessionExpired, fmt.Errorf("token expired at %s", exp.Format(time.RFC3339)))
		return
	}

	s.token = token
	s.profile = &profile
	utils.Info("session restored", map[string]any{"user": profile.Name})
}

func (s *Store) discardLocked(message string, cause error) {
	utils.Warn("failed to restore session", map[string]any{"error": cause.Error()})
	if err := s.repo.Remove(TokenKey, ProfileKey); err != nil {
		utils.Error("failed to clear stored session", map[string]any{"error": err.Error()})
	}
	s.token = ""
	s.profile = nil
	s.notifier.Error(message)
}

// tokenExpiry reads the exp claim of a JWT without verifying it. Opaque tokens have no expiry.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Login stores the token and profile together and marks the session as freshly authenticated
func (s *Store) Login(token string, profile models.UserProfile) error {
	if token == "" || profile.Name == "" {
		return ErrIncompleteSession
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("session: encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SetMany(map[string]string{TokenKey: token, ProfileKey: string(raw)}); err != nil {
		return fmt.Errorf("session: persist login: %w", err)
	}
	s.token = token
	s.profile = &profile
	s.isNewLogin = true

	utils.Info("session started", map[string]any{"user": profile.Name})
	return nil
}

// Logout clears the session from memory and storage and sends the user to the login page
func (s *Store) Logout() error {
	s.mu.Lock()
	err := s.repo.Remove(TokenKey, ProfileKey)
	s.token = ""
	s.profile = nil
	s.isNewLogin = false
	s.mu.Unlock()

	if err != nil {
		utils.Error("failed to clear stored session", map[string]any{"error": err.Error()})
		return fmt.Errorf("session: clear storage: %w", err)
	}
	s.notifier.Success(msgLoggedOut)
	s.navigate(LoginPath)
	return nil
}

// UpdateProfile replaces the stored profile and leaves the token untouched
func (s *Store) UpdateProfile(profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("session: encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return ErrIncompleteSession
	}
	if err := s.repo.SetMany(map[string]string{ProfileKey: string(raw)}); err != nil {
		return fmt.Errorf("session: persist profile: %w", err)
	}
	s.profile = &profile
	return nil
}

// AcknowledgeNewLogin clears the freshly-authenticated flag
func (s *Store) AcknowledgeNewLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isNewLogin = false
}

// IsLoading reports whether Restore has not completed yet
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// IsNewLogin reports whether the session was just created by Login
func (s *Store) IsNewLogin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isNewLogin
}

// Token returns the access token, or "" when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns a copy of the current profile, or nil when logged out
func (s *Store) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Snapshot returns both halves of the session read under one lock
func (s *Store) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := models.Session{Token: s.token}
	if s.profile != nil {
		p := *s.profile
		out.Profile = &p
	}
	return out
}

// IsAuthenticated reports whether a token and profile are held
func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().Authenticated()
}
