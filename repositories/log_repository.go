package repositories

import (
	"errors"
	"fmt"
	"os"
)

// LogRepository interface defines activity log persistence operations.
// The backing store is an append-only flat text file, one entry per
// line. Reads always come from the durable file, never from any
// in-memory mirror.
type LogRepository interface {
	Append(entry string) error
	ReadAll() (content string, exists bool, err error)
	Clear() (existed bool, err error)
}

// fileLogRepository implements LogRepository interface
type fileLogRepository struct {
	path string
}

// NewLogRepository creates a new file-backed log repository
func NewLogRepository(path string) LogRepository {
	return &fileLogRepository{path: path}
}

// Append writes one line-terminated entry to the end of the log file,
// creating it if necessary.
func (r *fileLogRepository) Append(entry string) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if _, err := f.WriteString(entry + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	return nil
}

// ReadAll returns the full log content verbatim. The second return
// value reports whether a log file exists at all.
func (r *fileLogRepository) ReadAll() (string, bool, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read log file: %w", err)
	}

	return string(data), true, nil
}

// Clear deletes the log file. Clearing an absent log is not an error;
// the return value reports whether there was anything to clear.
func (r *fileLogRepository) Clear() (bool, error) {
	err := os.Remove(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove log file: %w", err)
	}

	return true, nil
}
