package ports

// Package ports defines interfaces (hexagonal ports) for credential handling and backend access.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"net/http"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
)

// CredentialSlot is the single credential slot of one client.
// Get returns domainauth.ErrNoCredential when the slot is empty.
type CredentialSlot interface {
	Get(ctx context.Context) (domainauth.Credential, error)
	Set(ctx context.Context, cred domainauth.Credential) error
	Clear(ctx context.Context) error
}

// CredentialStore binds the credential slot of the client behind an HTTP exchange.
// Writes through the returned slot may set cookies on w, so it must be used before
// the response header is written.
type CredentialStore interface {
	Slot(w http.ResponseWriter, r *http.Request) CredentialSlot
}

// CredentialValidator asks the backend whether a credential is still accepted.
// It returns nil on acceptance, an error wrapping domainauth.ErrCredentialRejected on
// 401/403, and any other error for transport failures.
type CredentialValidator interface {
	Validate(ctx context.Context, cred domainauth.Credential) error
}

// LoginInput carries the login form values.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput carries the sign-up form values.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Authenticator drives the backend's login, sign-up and logout endpoints.
type Authenticator interface {
	Login(ctx context.Context, in LoginInput) (domainauth.Credential, error)
	Register(ctx context.Context, in RegisterInput) error
	Logout(ctx context.Context, cred domainauth.Credential) error
}
