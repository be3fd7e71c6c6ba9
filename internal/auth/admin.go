package auth

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an administrator account. Lifecycle metadata (version, timestamps,
// active/archived flags) is set by NewAdmin and Touched, never mutated through
// shared state.
type Admin struct {
	ID        string
	UID       string
	Email     string
	Name      string
	Password  string // bcrypt hash, never the plaintext
	IsActive  bool
	LastLogin *time.Time
	CreatedOn time.Time
	UpdatedOn time.Time
	Version   int
	Active    bool
	Archived  bool
}

// NewAdmin builds a fresh record with initialized lifecycle metadata:
// version 1, createdOn equal to updatedOn, uId equal to id.
func NewAdmin(email, name, hashedPassword string) Admin {
	id := uuid.NewString()
	now := time.Now().UTC()
	return Admin{
		ID:        id,
		UID:       id,
		Email:     email,
		Name:      name,
		Password:  hashedPassword,
		IsActive:  true,
		CreatedOn: now,
		UpdatedOn: now,
		Version:   1,
		Active:    true,
		Archived:  false,
	}
}

// Touched returns a copy with the update timestamp refreshed and the version
// bumped. Every persisted mutation goes through this.
func (a Admin) Touched() Admin {
	a.UpdatedOn = time.Now().UTC()
	a.Version++
	return a
}

// View is the redacted admin shape returned to callers; the password hash is
// never serialized.
type View struct {
	UID       string     `json:"uId"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedOn *time.Time `json:"createdOn,omitempty"`
}

// Redact strips the credential from an admin record.
func (a Admin) Redact() View {
	return View{
		UID:       a.UID,
		Email:     a.Email,
		Name:      a.Name,
		IsActive:  a.IsActive,
		LastLogin: a.LastLogin,
	}
}
