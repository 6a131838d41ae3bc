package domain

import (
	"net/mail"
	"strings"
)

// ProfileUpdate edits the signed-in administrator's own profile.
type ProfileUpdate struct {
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
}

// Normalize trims both fields.
func (p ProfileUpdate) Normalize() ProfileUpdate {
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.Phone = strings.TrimSpace(p.Phone)
	return p
}

func (p ProfileUpdate) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.DisplayName == "" && p.Phone == "" {
		errs["displayName"] = "nothing to update"
	}
	return errs
}

// PasswordChange replaces the administrator's password. ConfirmPassword is
// checked here and never sent.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"-"`
}

func (p PasswordChange) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.CurrentPassword == "" {
		errs["currentPassword"] = "current password is required"
	}
	switch {
	case p.NewPassword == "":
		errs["newPassword"] = "new password is required"
	case p.NewPassword != p.ConfirmPassword:
		errs["confirmPassword"] = "new passwords do not match"
	}
	return errs
}

// EmailChange moves the administrator's account to a new address. The
// backend checks Password.
type EmailChange struct {
	Password string `json:"password"`
	NewEmail string `json:"newEmail"`
}

func (e EmailChange) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if e.Password == "" {
		errs["password"] = "password is required"
	}
	if addr, err := mail.ParseAddress(strings.TrimSpace(e.NewEmail)); err != nil || addr.Name != "" {
		errs["newEmail"] = "a valid email address is required"
	}
	return errs
}
