package models

import "time"

// AuditLogEntry represents a single mutating HTTP request
type AuditLogEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor_id"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Body      string    `json:"body"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
}
