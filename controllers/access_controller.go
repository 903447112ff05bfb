package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gatekit/gatekit/authenticator"
	"github.com/gatekit/gatekit/models"
	"github.com/gatekit/gatekit/services"
)

// AccessController handles allow-list management requests
type AccessController struct {
	services *services.Services
	admins   *authenticator.AdminSet
}

// NewAccessController creates a new access controller
func NewAccessController(services *services.Services, admins *authenticator.AdminSet) *AccessController {
	return &AccessController{
		services: services,
		admins:   admins,
	}
}

// AddUser handles POST /add_user
func (c *AccessController) AddUser(w http.ResponseWriter, r *http.Request) {
	var form models.AddUserForm
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

	result, err := c.services.Access.Grant(form.UserToAdd, form.Duration)
	if errors.Is(err, models.ErrInvalidDuration) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid duration format."})
		return
	}
	if err != nil {
		http.Error(w, "Failed to grant access: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if result.AlreadyExists {
		respondMessage(w, "User already exists.")
		return
	}

	respondMessage(w, fmt.Sprintf("User %s added successfully for %s. Access will expire on %s.",
		form.UserToAdd, strings.ToLower(form.Duration), models.FormatDateTime(result.ExpiresAt)))
}

// RemoveUser handles POST /remove_user
func (c *AccessController) RemoveUser(w http.ResponseWriter, r *http.Request) {
	var form models.RemoveUserForm
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

	removed, err := c.services.Access.Revoke(form.UserToRemove)
	if err != nil {
		http.Error(w, "Failed to revoke access: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if !removed {
		respondMessage(w, "User not found.")
		return
	}

	respondMessage(w, fmt.Sprintf("User %s removed successfully.", form.UserToRemove))
}

// UserInfo handles GET /user_info
func (c *AccessController) UserInfo(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	status := c.services.Access.Describe(userID)

	info := models.UserInfo{
		UserID:                userID,
		Username:              "N/A",
		Role:                  status.Role,
		ApprovalExpiryDate:    "Not Approved",
		RemainingApprovalTime: "N/A",
	}
	if status.ExpiresAt != nil {
		info.ApprovalExpiryDate = models.FormatDateTime(*status.ExpiresAt)
	}
	if status.Remaining != nil {
		info.RemainingApprovalTime = status.Remaining.String()
	}

	respondJSON(w, http.StatusOK, info)
}
