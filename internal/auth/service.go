package auth

import (
	"context"
	"strings"
	"time"

	"lunchscan/internal/apperr"
	"lunchscan/internal/mailer"
)

// AdminStore is the persistence surface the service needs.
type AdminStore interface {
	FindActiveByEmail(ctx context.Context, email string) (*Admin, error)
	FindActiveByUID(ctx context.Context, uid string) (*Admin, error)
	Insert(ctx context.Context, a Admin) error
	Update(ctx context.Context, a Admin) error
}

// Mailer delivers password-reset mail.
type Mailer interface {
	Send(to, subject, html string) error
}

// GenericResetMessage is returned whether or not the email exists, so the
// endpoint never reveals which accounts are registered.
const GenericResetMessage = "If the email exists, a new password has been sent to your email address"

// Service implements admin signup, login, password recovery and profile reads.
type Service struct {
	store      AdminStore
	mail       Mailer
	secret     string
	tokenTTL   time.Duration
	bcryptCost int
}

// NewService wires the auth service.
func NewService(store AdminStore, mail Mailer, secret string, tokenTTL time.Duration, bcryptCost int) *Service {
	return &Service{
		store:      store,
		mail:       mail,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Credentials pairs a freshly issued token with the redacted admin view.
type Credentials struct {
	Token string `json:"token"`
	Admin View   `json:"admin"`
}

// Signup validates input, rejects duplicate active emails and creates the
// account. The plaintext password is hashed before anything is persisted.
func (s *Service) Signup(ctx context.Context, email, name, password string) (*Credentials, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return nil, apperr.BadRequest("Email, name, and password are required")
	}
	if len(password) < MinPasswordLength {
		return nil, apperr.BadRequest("Password must be at least 6 characters long")
	}

	existing, err := s.store.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Admin with this email already exists")
	}

	hashed, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin := NewAdmin(strings.ToLower(email), name, hashed)
	if err := s.store.Insert(ctx, admin); err != nil {
		return nil, err
	}

	token, err := Issue(admin, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &Credentials{Token: token, Admin: admin.Redact()}, nil
}

// Login authenticates an admin. Unknown email and wrong password produce the
// identical message so the response leaks nothing about which part failed.
func (s *Service) Login(ctx context.Context, email, password string) (*Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.BadRequest("Email and password are required")
	}

	admin, err := s.store.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if !admin.IsActive {
		return nil, apperr.Unauthorized("Account is deactivated. Please contact administrator.")
	}
	if !CheckPassword(password, admin.Password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	now := time.Now().UTC()
	updated := *admin
	updated.LastLogin = &now
	updated = updated.Touched()
	if err := s.store.Update(ctx, updated); err != nil {
		return nil, err
	}

	token, err := Issue(updated, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &Credentials{Token: token, Admin: updated.Redact()}, nil
}

// ForgotPassword resets the credential to a random password and mails it.
// Unknown emails get the generic message with no persistence at all.
//
// When delivery fails the new password is NOT reverted: the record is merely
// persisted a second time with another version bump, so the caller sees a
// failure while the password has already changed. That inconsistency is
// inherited behavior, kept deliberately (see DESIGN.md).
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperr.BadRequest("Email is required")
	}

	admin, err := s.store.FindActiveByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return GenericResetMessage, nil
	}

	newPassword, err := RandomPassword()
	if err != nil {
		return "", err
	}
	hashed, err := HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return "", err
	}

	updated := *admin
	updated.Password = hashed
	updated = updated.Touched()
	if err := s.store.Update(ctx, updated); err != nil {
		return "", err
	}

	subject := "Password Reset - Lunch Scan Admin"
	if err := s.mail.Send(updated.Email, subject, mailer.PasswordResetHTML(updated.Name, newPassword)); err != nil {
		updated = updated.Touched()
		_ = s.store.Update(ctx, updated)
		return "", apperr.Internal("Failed to send email. Please try again later.")
	}
	return "New password has been sent to your email address", nil
}

// Profile loads the redacted view for a token's admin id.
func (s *Service) Profile(ctx context.Context, adminID string) (*View, error) {
	admin, err := s.store.FindActiveByUID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}
	view := admin.Redact()
	view.CreatedOn = &admin.CreatedOn
	return &view, nil
}

// Secret exposes the signing secret for the gate middleware and the
// verify-token handler.
func (s *Service) Secret() string { return s.secret }
