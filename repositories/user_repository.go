package repositories

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// UserRepository interface defines allow-list persistence operations.
// The backing store is a flat text file with one user identifier per
// line; every mutation rewrites the whole file.
type UserRepository interface {
	LoadAll() (map[string]struct{}, error)
	WriteAll(userIDs []string) error
}

// fileUserRepository implements UserRepository interface
type fileUserRepository struct {
	path string
}

// NewUserRepository creates a new file-backed user repository
func NewUserRepository(path string) UserRepository {
	return &fileUserRepository{path: path}
}

// LoadAll reads the full allow-list from disk. A missing file is a
// valid empty state, not an error.
func (r *fileUserRepository) LoadAll() (map[string]struct{}, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	users := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			users[line] = struct{}{}
		}
	}

	return users, nil
}

// WriteAll rewrites the allow-list file with one identifier per line.
// Line order follows the order of the slice, which the caller builds
// from an unordered set; no particular order is guaranteed.
func (r *fileUserRepository) WriteAll(userIDs []string) error {
	var b strings.Builder
	for _, id := range userIDs {
		b.WriteString(id)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}

	return nil
}
