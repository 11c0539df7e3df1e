package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/validation"
)

// MinPasswordLength is the shortest password the login and sign-up forms accept.
const MinPasswordLength = 6

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.Authenticator
	Logger        *slog.Logger
}

// AuthService runs the login, sign-up and logout flows and owns every write of a credential
// into a client's slot.
type AuthService struct {
	authenticator ports.Authenticator
	logger        *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: opts.Authenticator,
		logger:        logger.With("component", "auth_service"),
	}
}

// SignUpInput carries the sign-up form values.
type SignUpInput struct {
	Email    string
	Password string
}

// Login validates the form, exchanges the credentials for a bearer token and replaces whatever
// credential the slot held.
func (s *AuthService) Login(ctx context.Context, slot ports.CredentialSlot, in ports.LoginInput) error {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return err
	}

	cred, err := s.authenticator.Login(ctx, in)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if cred.IsZero() {
		return apperrors.Internal("no token received")
	}

	if err := slot.Set(ctx, cred); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	s.logger.InfoContext(ctx, "login succeeded")
	return nil
}

// Register creates a backend account. The display name is the local part of the email.
// It does not log the user in.
func (s *AuthService) Register(ctx context.Context, in SignUpInput) error {
	email := strings.TrimSpace(in.Email)
	if err := validateCredentials(email, in.Password); err != nil {
		return err
	}

	err := s.authenticator.Register(ctx, ports.RegisterInput{
		Name:     displayName(email),
		Email:    email,
		Password: in.Password,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout tells the backend the token is done with and clears the slot. The backend call is
// best effort; the slot is cleared even when it fails.
func (s *AuthService) Logout(ctx context.Context, slot ports.CredentialSlot) error {
	cred, err := slot.Get(ctx)
	switch {
	case err == nil && !cred.IsZero():
		if lerr := s.authenticator.Logout(ctx, cred); lerr != nil {
			s.logger.WarnContext(ctx, "backend logout failed", "error", lerr)
		}
	case err != nil && !errors.Is(err, domainauth.ErrNoCredential):
		s.logger.WarnContext(ctx, "credential slot unreadable during logout", "error", err)
	}

	if err := slot.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func validateCredentials(email, password string) error {
	fv := validation.New().
		Validate("email", email, validation.Email("Email")).
		Validate("password", password, validation.MinLength("Password", MinPasswordLength))
	return apperrors.ValidationFields("Please correct the highlighted fields.", fv.Errors())
}

func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
