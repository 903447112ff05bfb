package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users UserRepository
	Logs  LogRepository
	Audit AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, usersFile, logFile string) *Repositories {
	return &Repositories{
		Users: NewUserRepository(usersFile),
		Logs:  NewLogRepository(logFile),
		Audit: NewAuditRepository(db),
	}
}
