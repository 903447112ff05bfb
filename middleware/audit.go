package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gatekit/gatekit/models"
	"github.com/gatekit/gatekit/repositories"
)

// AuditLogger middleware records all POST/PUT/DELETE requests in the
// audit trail
func AuditLogger(auditRepo repositories.AuditRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				body := captureBody(r)

				entry := &models.AuditLogEntry{
					ActorID:   actorFromBody(body),
					Method:    r.Method,
					Path:      r.URL.Path,
					Body:      body,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
				}

				// Log asynchronously to avoid blocking the request
				go func() {
					if err := auditRepo.Create(entry); err != nil {
						log.Printf("Failed to create audit log: %v", err)
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// captureBody reads the request body and replaces it so the handler
// can still read it
func captureBody(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(data))

	return string(data)
}

// actorFromBody pulls the caller identifier out of a JSON payload
func actorFromBody(body string) string {
	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	return payload.UserID
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
