package models

import (
	"testing"
	"time"
)

// Test duration spec parsing for every accepted unit
func TestParseDuration(t *testing.T) {
	cases := []struct {
		spec string
		want time.Duration
	}{
		{"1hour", time.Hour},
		{"12hour", 12 * time.Hour},
		{"100hour", 100 * time.Hour},
		{"1days", 24 * time.Hour},
		{"2days", 48 * time.Hour},
		{"10days", 240 * time.Hour},
		{"1week", 7 * 24 * time.Hour},
		{"2week", 14 * 24 * time.Hour},
		{"1HOUR", time.Hour},
		{"3Days", 72 * time.Hour},
		{"1WEEK", 7 * 24 * time.Hour},
	}

	for _, tc := range cases {
		got, err := ParseDuration(tc.spec)
		if err != nil {
			t.Errorf("ParseDuration(%q) returned error: %v", tc.spec, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tc.spec, got, tc.want)
		}
	}
}

// Test rejection of malformed duration specs
func TestParseDurationInvalid(t *testing.T) {
	specs := []string{
		"",
		"hour",
		"days",
		"1",
		"1day",
		"0days",
		"-1days",
		"0hour",
		"-3week",
		"abcdays",
		"2years",
		"2 days",
		"days2",
		"1.5days",
		// the unit must sit in exactly the trailing four characters,
		// so the five-character literals never fit behind a number
		"2hours",
		"2weeks",
		"1month",
		"2months",
	}

	for _, spec := range specs {
		if _, err := ParseDuration(spec); err != ErrInvalidDuration {
			t.Errorf("ParseDuration(%q) = %v, want ErrInvalidDuration", spec, err)
		}
	}
}

// Test AddUserForm validation
func TestAddUserFormValidation(t *testing.T) {
	validForm := AddUserForm{
		UserID:    "5935306519",
		UserToAdd: "42",
		Duration:  "2days",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := AddUserForm{}
	errors = invalidForm.Validate()
	if len(errors) != 3 {
		t.Errorf("Expected 3 errors for empty form, got: %v", errors)
	}
}

// Test RemoveUserForm validation
func TestRemoveUserFormValidation(t *testing.T) {
	validForm := RemoveUserForm{
		UserID:       "5935306519",
		UserToRemove: "42",
	}
	if errors := validForm.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := RemoveUserForm{UserID: "5935306519"}
	if errors := invalidForm.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for missing target, got: %v", errors)
	}
}

// Test BroadcastForm validation
func TestBroadcastFormValidation(t *testing.T) {
	validForm := BroadcastForm{
		UserID:  "5935306519",
		Message: "maintenance tonight",
	}
	if errors := validForm.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := BroadcastForm{UserID: "5935306519"}
	if errors := invalidForm.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for missing message, got: %v", errors)
	}
}

// Test datetime formatting used in response messages
func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := FormatDateTime(ts); got != "2025-03-14 09:26:53" {
		t.Errorf("FormatDateTime = %q", got)
	}
}
