package models

import (
	"time"
)

// Role names reported by the user info endpoint. Role depends only on
// admin set membership, not on whether the user is currently allowed.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// AccessStatus describes a user as seen by the user info endpoint.
// ExpiresAt and Remaining are nil when no access record exists for the
// user. Remaining is not clamped at zero: a negative value means the
// grant has expired but was never revoked.
type AccessStatus struct {
	Role      string
	ExpiresAt *time.Time
	Remaining *time.Duration
}

// UserInfo is the user info response payload. Expiry and remaining
// time are pre-rendered strings because the endpoint reports sentinel
// text ("Not Approved", "N/A") for users without an access record.
type UserInfo struct {
	UserID                string `json:"user_id"`
	Username              string `json:"username"`
	Role                  string `json:"role"`
	ApprovalExpiryDate    string `json:"approval_expiry_date"`
	RemainingApprovalTime string `json:"remaining_approval_time"`
}

// AddUserForm is the request payload for granting access.
type AddUserForm struct {
	UserID    string `json:"user_id"`
	UserToAdd string `json:"user_to_add"`
	Duration  string `json:"duration"`
}

// Validate validates the add user form data
func (f *AddUserForm) Validate() []string {
	var errors []string

	if f.UserID == "" {
		errors = append(errors, "user_id is required")
	}
	if f.UserToAdd == "" {
		errors = append(errors, "user_to_add is required")
	}
	if f.Duration == "" {
		errors = append(errors, "duration is required")
	}

	return errors
}

// RemoveUserForm is the request payload for revoking access.
type RemoveUserForm struct {
	UserID       string `json:"user_id"`
	UserToRemove string `json:"user_to_remove"`
}

// Validate validates the remove user form data
func (f *RemoveUserForm) Validate() []string {
	var errors []string

	if f.UserID == "" {
		errors = append(errors, "user_id is required")
	}
	if f.UserToRemove == "" {
		errors = append(errors, "user_to_remove is required")
	}

	return errors
}

// BroadcastForm is the request payload for recording a broadcast.
type BroadcastForm struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Validate validates the broadcast form data
func (f *BroadcastForm) Validate() []string {
	var errors []string

	if f.UserID == "" {
		errors = append(errors, "user_id is required")
	}
	if f.Message == "" {
		errors = append(errors, "message is required")
	}

	return errors
}

// ClearLogsForm is the request payload for clearing the activity log.
type ClearLogsForm struct {
	UserID string `json:"user_id"`
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM:SS for response
// messages and the user info payload.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
