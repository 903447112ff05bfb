package services

import (
	"fmt"
	"sync"

	"github.com/gatekit/gatekit/repositories"
)

// NoLogsSentinel is the value reported when no activity log exists.
const NoLogsSentinel = "No logs found."

// ActivityService interface defines the append-only activity log logic
type ActivityService interface {
	Append(entry string) error
	ReadAll() (string, error)
	Clear() (bool, error)
	Broadcast(message string, recipients []string) error
}

// activityService implements ActivityService interface. The durable
// file is the source of truth; the in-memory mirror only tracks
// entries appended within the current process lifetime. A mutex
// serializes mutations of file and mirror.
type activityService struct {
	mu     sync.Mutex
	mirror []string
	repo   repositories.LogRepository
}

// NewActivityService creates a new activity service
func NewActivityService(repo repositories.LogRepository) ActivityService {
	return &activityService{repo: repo}
}

// Append writes one entry to the durable log and then to the mirror,
// in that order. A write failure propagates and leaves the mirror
// untouched.
func (s *activityService) Append(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendLocked(entry)
}

// ReadAll returns the full durable log content verbatim, or the
// "no logs found" sentinel when no log exists yet.
func (s *activityService) ReadAll() (string, error) {
	content, exists, err := s.repo.ReadAll()
	if err != nil {
		return "", err
	}
	if !exists {
		return NoLogsSentinel, nil
	}

	return content, nil
}

// Clear deletes the durable log and empties the mirror. Clearing an
// absent log is not an error; the return value reports whether there
// was anything to clear.
func (s *activityService) Clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existed, err := s.repo.Clear()
	if err != nil {
		return false, err
	}
	s.mirror = nil

	return existed, nil
}

// Broadcast records one log entry per recipient in iteration order.
// Nothing is delivered; the log only records intent.
func (s *activityService) Broadcast(message string, recipients []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, recipient := range recipients {
		entry := fmt.Sprintf("Broadcast message to %s: %s", recipient, message)
		if err := s.appendLocked(entry); err != nil {
			return err
		}
	}

	return nil
}

// appendLocked appends to the durable log, then to the mirror.
// Callers must hold the mutex.
func (s *activityService) appendLocked(entry string) error {
	if err := s.repo.Append(entry); err != nil {
		return err
	}
	s.mirror = append(s.mirror, entry)

	return nil
}
