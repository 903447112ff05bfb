package controllers

import (
	"net/http"
	"strings"

	"github.com/gatekit/gatekit/authenticator"
	"github.com/gatekit/gatekit/models"
	"github.com/gatekit/gatekit/services"
)

// LogController handles activity log requests
type LogController struct {
	services *services.Services
	admins   *authenticator.AdminSet
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services, admins *authenticator.AdminSet) *LogController {
	return &LogController{
		services: services,
		admins:   admins,
	}
}

// ShowLogs handles GET /show_logs
func (c *LogController) ShowLogs(w http.ResponseWriter, r *http.Request) {
	content, err := c.services.Activity.ReadAll()
	if err != nil {
		http.Error(w, "Failed to read logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"logs": content})
}

// ClearLogs handles POST /clear_logs
func (c *LogController) ClearLogs(w http.ResponseWriter, r *http.Request) {
	var form models.ClearLogsForm
	if !decodeJSON(w, r, &form) {
		return
	}

	if !c.admins.IsAdmin(form.UserID) {
		respondMessage(w, unauthorizedMessage)
		return
	}

	existed, err := c.services.Activity.Clear()
	if err != nil {
		http.Error(w, "Failed to clear logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if !existed {
		respondMessage(w, services.NoLogsSentinel)
		return
	}

	respondMessage(w, "Logs cleared successfully.")
}

// Broadcast handles POST /broadcast
func (c *LogController) Broadcast(w http.ResponseWriter, r *http.Request) {
	var form models.BroadcastForm
	if !decodeJSON(w, r, &form) {
		return
	}

	if !c.admins.IsAdmin(form.UserID) {
		respondMessage(w, unauthorizedMessage)
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": strings.Join(errs, ", ")})
		return
	}

	// Recipients are the users authorized at this moment. Nothing is
	// delivered; one log entry per recipient records the intent.
	recipients := c.services.Access.AuthorizedUsers()
	if err := c.services.Activity.Broadcast(form.Message, recipients); err != nil {
		http.Error(w, "Failed to record broadcast: "+err.Error(), http.StatusInternalServerError)
		return
	}

	respondMessage(w, "Broadcast message sent successfully.")
}
