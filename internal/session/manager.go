// Package session owns the authentication state for the lifetime of a
// client: token, decoded identity and candidate-profile linkage. State is
// persisted through the key-value store so a later invocation restores the
// same session without re-authentication, up to token expiry.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"huntboard/internal/api"
	"huntboard/internal/common/errors"
	"huntboard/internal/common/logger"
	"huntboard/internal/models"
	"huntboard/internal/store"
	"huntboard/internal/token"
)

// State is the session lifecycle state.
type State int

const (
	StateUnauthenticated State = iota
	StateRestoring
	StateAuthenticated   // valid token, no candidate profile resolved
	StateProfileResolved // valid token and resolved candidate profile
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateProfileResolved:
		return "profile-resolved"
	default:
		return "unauthenticated"
	}
}

// Manager is the session state machine. Exactly one Manager is live per
// client; views must not touch application or resume data until a profile
// is resolved or onboarding completes.
type Manager struct {
	api    *api.Client
	store  *store.Store
	logger logger.Logger
	now    func() time.Time

	mu          sync.Mutex
	state       State
	session     models.Session
	candidateID int64
	profile     *models.CandidateProfile
}

// NewManager wires the manager to the API client and state store, and
// registers the forced-logout hook for transport-level 401s.
func NewManager(client *api.Client, st *store.Store, log logger.Logger) *Manager {
	m := &Manager{
		api:    client,
		store:  st,
		logger: log.WithFields(map[string]interface{}{"component": "session"}),
		now:    time.Now,
	}
	client.SetUnauthorizedHandler(m.forceReauth)
	return m
}

// SetClock overrides the time source. Tests use it to pin expiry checks.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Email returns the authenticated identity's email, or empty.
func (m *Manager) Email() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Email
}

// CandidateID returns the resolved candidate id, or 0.
func (m *Manager) CandidateID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.candidateID
}

// Profile returns the resolved candidate profile, or nil.
func (m *Manager) Profile() *models.CandidateProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// Restore rebuilds the session from persisted state. A missing, malformed
// or expired token lands in Unauthenticated (clearing persisted state when
// it is unusable); a valid token proceeds to profile resolution. Only a
// resolution transport failure is returned as an error.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateRestoring
	m.mu.Unlock()

	tok := m.store.Token()
	if tok == "" {
		m.reset()
		return nil
	}

	identity, err := token.Decode(tok)
	if err != nil {
		m.logger.Warn("persisted token is malformed, clearing session", map[string]interface{}{
			"error": err.Error(),
		})
		m.clearPersisted()
		m.reset()
		return nil
	}
	if identity.Expired(m.now()) {
		m.logger.Info("persisted token expired, clearing session", map[string]interface{}{
			"expiry": identity.Expiry.UTC().Format(time.RFC3339),
		})
		m.clearPersisted()
		m.reset()
		return nil
	}

	email := identity.Email
	if email == "" {
		email = m.storedEmail()
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.session = models.Session{Token: tok, Email: email, Expiry: identity.Expiry}
	m.mu.Unlock()

	return m.resolveProfile(ctx, identity.CandidateID)
}

// Login authenticates with the remote API, persists the session and
// resolves the candidate profile. Any failure after the credential
// exchange rolls the session back to Unauthenticated.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	result, err := m.api.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	if err := m.store.Set(store.KeyToken, result.Token); err != nil {
		m.rollback()
		return errors.NewStateStoreError(err)
	}
	if err := m.storeUser(email); err != nil {
		m.rollback()
		return errors.NewStateStoreError(err)
	}

	identity, err := token.Decode(result.Token)
	if err != nil {
		m.rollback()
		return errors.NewTokenInvalidError(err)
	}

	sessionEmail := identity.Email
	if sessionEmail == "" {
		sessionEmail = email
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.session = models.Session{Token: result.Token, Email: sessionEmail, Expiry: identity.Expiry}
	m.mu.Unlock()

	// The login envelope may carry the profile directly.
	if result.Candidate != nil {
		if err := m.cacheProfile(result.Candidate); err != nil {
			m.rollback()
			return err
		}
		return nil
	}

	if err := m.resolveProfile(ctx, identity.CandidateID); err != nil {
		m.rollback()
		return err
	}
	return nil
}

// Signup registers a new account. It does not authenticate; callers log in
// afterwards.
func (m *Manager) Signup(ctx context.Context, email, password string) error {
	return m.api.Signup(ctx, models.Credentials{Email: email, Password: password})
}

// Logout clears persisted token, user and candidate id and resets the
// in-memory state unconditionally, regardless of network state.
func (m *Manager) Logout() {
	m.clearPersisted()
	m.reset()
}

// CreateProfile runs onboarding: validates and submits the profile, caches
// the resulting id and transitions to profile-resolved.
func (m *Manager) CreateProfile(ctx context.Context, input models.CandidateProfileInput) (*models.CandidateProfile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}
	profile, err := m.api.CreateCandidateProfile(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := m.cacheProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// resolveProfile finds the candidate profile for the authenticated
// identity. Order: explicit id from the token, then the cached id, then a
// case-insensitive email scan over the full candidate list. Not-found on
// the id path clears the stale cache and falls through to the scan; no
// match leaves the session authenticated without a profile (onboarding).
func (m *Manager) resolveProfile(ctx context.Context, tokenCandidateID int64) error {
	tryID := tokenCandidateID
	fromCache := false
	if tryID == 0 {
		if cached, ok := m.store.CandidateID(); ok {
			tryID = cached
			fromCache = true
		}
	}

	if tryID != 0 {
		profile, err := m.api.GetCandidate(ctx, tryID)
		if err == nil {
			return m.cacheProfile(profile)
		}
		if errors.IsNotFound(err) {
			if fromCache {
				if rmErr := m.store.Remove(store.KeyCandidateID); rmErr != nil {
					return errors.NewStateStoreError(rmErr)
				}
			}
		} else {
			m.logger.Warn("candidate fetch by id failed, falling back to email scan", map[string]interface{}{
				"candidateId": tryID,
				"error":       err.Error(),
			})
		}
	}

	email := m.Email()
	if email == "" {
		return nil
	}

	candidates, err := m.api.GetAllCandidates(ctx)
	if err != nil {
		return err
	}
	for i := range candidates {
		if strings.EqualFold(candidates[i].Email, email) {
			return m.cacheProfile(&candidates[i])
		}
	}

	// No profile anywhere: onboarding required.
	return nil
}

// cacheProfile records the resolved profile in memory and persists its id.
func (m *Manager) cacheProfile(profile *models.CandidateProfile) error {
	if err := m.store.SetCandidateID(profile.ID); err != nil {
		return errors.NewStateStoreError(err)
	}
	m.mu.Lock()
	m.candidateID = profile.ID
	m.profile = profile
	m.state = StateProfileResolved
	m.mu.Unlock()
	return nil
}

// forceReauth is the 401 hook: the token is no longer accepted, so drop
// the persisted credentials (keeping the cached candidate id, as the
// original client does) and require a fresh login.
func (m *Manager) forceReauth() {
	if err := m.store.Remove(store.KeyToken, store.KeyUser); err != nil {
		m.logger.Error("failed to clear credentials after 401", map[string]interface{}{
			"error": err.Error(),
		})
	}
	m.reset()
}

func (m *Manager) rollback() {
	m.clearPersisted()
	m.reset()
}

func (m *Manager) clearPersisted() {
	if err := m.store.Remove(store.KeyToken, store.KeyUser, store.KeyCandidateID); err != nil {
		m.logger.Error("failed to clear persisted session state", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (m *Manager) reset() {
	m.mu.Lock()
	m.state = StateUnauthenticated
	m.session = models.Session{}
	m.candidateID = 0
	m.profile = nil
	m.mu.Unlock()
}

func (m *Manager) storeUser(email string) error {
	raw, err := json.Marshal(models.StoredUser{Email: email})
	if err != nil {
		return err
	}
	return m.store.Set(store.KeyUser, string(raw))
}

func (m *Manager) storedEmail() string {
	raw := m.store.Get(store.KeyUser)
	if raw == "" {
		return ""
	}
	var user models.StoredUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return ""
	}
	return user.Email
}
