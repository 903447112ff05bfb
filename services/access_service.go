package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gatekit/gatekit/authenticator"
	"github.com/gatekit/gatekit/models"
	"github.com/gatekit/gatekit/repositories"
)

// GrantResult reports the outcome of a grant. AlreadyExists is a soft
// outcome, not an error: the existing record and its expiry are left
// untouched.
type GrantResult struct {
	AlreadyExists bool
	ExpiresAt     time.Time
}

// AccessService interface defines the time-bounded authorization logic
type AccessService interface {
	Grant(userID, durationSpec string) (*GrantResult, error)
	Revoke(userID string) (bool, error)
	IsAuthorized(userID string) bool
	Describe(userID string) models.AccessStatus
	AuthorizedUsers() []string
}

// accessService implements AccessService interface. A single mutex
// serializes all mutations: the full-rewrite persistence strategy is a
// read-modify-write sequence that would otherwise lose updates under
// concurrent requests.
type accessService struct {
	mu     sync.Mutex
	users  map[string]struct{}
	expiry map[string]time.Time
	admins *authenticator.AdminSet
	repo   repositories.UserRepository
	clock  func() time.Time
}

// NewAccessService creates a new access service, loading the durable
// allow-list into memory. Expiry timestamps are not persisted, so
// users loaded from disk carry no expiry information.
func NewAccessService(admins *authenticator.AdminSet, repo repositories.UserRepository) (AccessService, error) {
	users, err := repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load allow-list: %w", err)
	}

	return &accessService{
		users:  users,
		expiry: make(map[string]time.Time),
		admins: admins,
		repo:   repo,
		clock:  time.Now,
	}, nil
}

// Grant authorizes a user for the span described by durationSpec.
// Returns models.ErrInvalidDuration when the spec does not parse. A
// user that is already authorized is reported via AlreadyExists and
// left unchanged.
func (s *accessService) Grant(userID, durationSpec string) (*GrantResult, error) {
	span, err := models.ParseDuration(durationSpec)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; ok {
		return &GrantResult{AlreadyExists: true}, nil
	}

	expiresAt := s.clock().Add(span)
	s.users[userID] = struct{}{}
	s.expiry[userID] = expiresAt

	if err := s.persistLocked(); err != nil {
		delete(s.users, userID)
		delete(s.expiry, userID)
		return nil, err
	}

	return &GrantResult{ExpiresAt: expiresAt}, nil
}

// Revoke removes a user from the allow-list. Returns false, without
// error, when the user is not currently authorized.
func (s *accessService) Revoke(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return false, nil
	}

	expiresAt, hadExpiry := s.expiry[userID]
	delete(s.users, userID)
	delete(s.expiry, userID)

	if err := s.persistLocked(); err != nil {
		s.users[userID] = struct{}{}
		if hadExpiry {
			s.expiry[userID] = expiresAt
		}
		return false, err
	}

	return true, nil
}

// IsAuthorized reports whether the user is on the allow-list. Expiry
// is not consulted: a user whose grant has lapsed remains authorized
// until explicitly revoked. Enforcement is left to external consumers
// of Describe.
func (s *accessService) IsAuthorized(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[userID]
	return ok
}

// Describe reports the user's role and, when an access record exists,
// its expiry and remaining time. Remaining is not clamped at zero; a
// negative value means the grant expired without being revoked.
func (s *accessService) Describe(userID string) models.AccessStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.AccessStatus{Role: models.RoleUser}
	if s.admins.IsAdmin(userID) {
		status.Role = models.RoleAdmin
	}

	if expiresAt, ok := s.expiry[userID]; ok {
		remaining := expiresAt.Sub(s.clock())
		status.ExpiresAt = &expiresAt
		status.Remaining = &remaining
	}

	return status
}

// AuthorizedUsers returns a snapshot of the allow-list, sorted for
// deterministic iteration.
func (s *accessService) AuthorizedUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]string, 0, len(s.users))
	for id := range s.users {
		users = append(users, id)
	}
	sort.Strings(users)

	return users
}

// persistLocked rewrites the durable allow-list from the in-memory
// set. Callers must hold the mutex.
func (s *accessService) persistLocked() error {
	userIDs := make([]string, 0, len(s.users))
	for id := range s.users {
		userIDs = append(userIDs, id)
	}

	if err := s.repo.WriteAll(userIDs); err != nil {
		return fmt.Errorf("failed to persist allow-list: %w", err)
	}

	return nil
}
