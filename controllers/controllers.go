package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gatekit/gatekit/authenticator"
	"github.com/gatekit/gatekit/repositories"
	"github.com/gatekit/gatekit/services"
)

// unauthorizedMessage is returned on every admin route when the caller
// is not in the admin set. It is a handled response, never an error.
const unauthorizedMessage = "Unauthorized."

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondMessage writes the standard {"response": ...} payload
func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"response": message})
}

// decodeJSON decodes a JSON request body into dst, writing a 400
// response and returning false when the body does not parse
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return false
	}
	return true
}

// Controllers holds all controller instances
type Controllers struct {
	Access *AccessController
	Logs   *LogController
	Audit  *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, admins *authenticator.AdminSet, auditRepo repositories.AuditRepository) *Controllers {
	return &Controllers{
		Access: NewAccessController(services, admins),
		Logs:   NewLogController(services, admins),
		Audit:  NewAuditController(auditRepo, admins),
	}
}
