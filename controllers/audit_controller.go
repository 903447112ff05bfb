package controllers

import (
	"net/http"
	"strconv"

	"github.com/gatekit/gatekit/authenticator"
	"github.com/gatekit/gatekit/models"
	"github.com/gatekit/gatekit/repositories"
)

const defaultAuditLimit = 50

// AuditController exposes the HTTP mutation audit trail to admins
type AuditController struct {
	auditRepo repositories.AuditRepository
	admins    *authenticator.AdminSet
}

// NewAuditController creates a new audit controller
func NewAuditController(auditRepo repositories.AuditRepository, admins *authenticator.AdminSet) *AuditController {
	return &AuditController{
		auditRepo: auditRepo,
		admins:    admins,
	}
}

// Recent handles GET /audit
func (c *AuditController) Recent(w http.ResponseWriter, r *http.Request) {
	if !c.admins.IsAdmin(r.URL.Query().Get("user_id")) {
		respondMessage(w, unauthorizedMessage)
		return
	}

	limit := defaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid limit."})
			return
		}
		limit = n
	}

	entries, err := c.auditRepo.ListRecent(limit)
	if err != nil {
		http.Error(w, "Failed to read audit trail: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.AuditLogEntry{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}
