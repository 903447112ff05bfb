package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gatekit/gatekit/models"
)

// AuditRepository handles audit trail persistence
type AuditRepository interface {
	Create(entry *models.AuditLogEntry) error
	ListRecent(limit int) ([]models.AuditLogEntry, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, actor_id, method, path, body, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(
		query,
		time.Now(),
		entry.ActorID,
		entry.Method,
		entry.Path,
		entry.Body,
		entry.UserAgent,
		entry.IPAddress,
	)

	return err
}

// ListRecent returns the most recent audit entries, newest first
func (r *sqliteAuditRepository) ListRecent(limit int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, timestamp, actor_id, method, path, body, user_agent, ip_address
		FROM audit_log
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.ActorID,
			&entry.Method,
			&entry.Path,
			&entry.Body,
			&entry.UserAgent,
			&entry.IPAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}
