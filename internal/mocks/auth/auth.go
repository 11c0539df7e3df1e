package auth

// Package auth contains simple hand-written test doubles for credential ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialSlot      = (*MemorySlot)(nil)
	_ ports.CredentialStore     = (*MemoryCredentialStore)(nil)
	_ ports.CredentialValidator = (*StubValidator)(nil)
	_ ports.Authenticator       = (*StubAuthenticator)(nil)
)

// MemorySlot is an in-memory credential slot that records how it was used.
type MemorySlot struct {
	mu       sync.Mutex
	cred     domainauth.Credential
	gets     int
	sets     int
	clrs     int
	GetErr   error
	ClearErr error
}

// NewMemorySlot creates a slot pre-filled with cred (empty means absent).
func NewMemorySlot(cred domainauth.Credential) *MemorySlot {
	return &MemorySlot{cred: cred}
}

func (s *MemorySlot) Get(_ context.Context) (domainauth.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.GetErr != nil {
		return "", s.GetErr
	}
	if s.cred.IsZero() {
		return "", domainauth.ErrNoCredential
	}
	return s.cred, nil
}

func (s *MemorySlot) Set(_ context.Context, cred domainauth.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	s.cred = cred
	return nil
}

func (s *MemorySlot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clrs++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.cred = ""
	return nil
}

// Peek returns the held credential without counting as a Get.
func (s *MemorySlot) Peek() domainauth.Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred
}

// Writes returns how many Set and Clear calls the slot received.
func (s *MemorySlot) Writes() (sets, clears int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets, s.clrs
}

// MemoryCredentialStore hands out one shared slot regardless of the request,
// modelling a single browser.
type MemoryCredentialStore struct {
	Shared *MemorySlot
}

// NewMemoryCredentialStore creates a store whose slot starts with cred.
func NewMemoryCredentialStore(cred domainauth.Credential) *MemoryCredentialStore {
	return &MemoryCredentialStore{Shared: NewMemorySlot(cred)}
}

func (m *MemoryCredentialStore) Slot(_ http.ResponseWriter, _ *http.Request) ports.CredentialSlot {
	return m.Shared
}

// StubValidator is a CredentialValidator driven by a function. The default accepts everything.
type StubValidator struct {
	ValidateFunc func(ctx context.Context, cred domainauth.Credential) error
	calls        atomic.Int64
}

func (v *StubValidator) Validate(ctx context.Context, cred domainauth.Credential) error {
	v.calls.Add(1)
	if v.ValidateFunc != nil {
		return v.ValidateFunc(ctx, cred)
	}
	return nil
}

// Calls returns how many validations were requested.
func (v *StubValidator) Calls() int { return int(v.calls.Load()) }

// AcceptToken returns a validator that accepts only token and rejects anything else.
func AcceptToken(token string) *StubValidator {
	return &StubValidator{ValidateFunc: func(_ context.Context, cred domainauth.Credential) error {
		if cred.Value() == token {
			return nil
		}
		return domainauth.ErrCredentialRejected
	}}
}

// StubAuthenticator simulates the backend login endpoints.
type StubAuthenticator struct {
	LoginFunc    func(ctx context.Context, in ports.LoginInput) (domainauth.Credential, error)
	RegisterFunc func(ctx context.Context, in ports.RegisterInput) error
	LogoutFunc   func(ctx context.Context, cred domainauth.Credential) error
}

func (a *StubAuthenticator) Login(ctx context.Context, in ports.LoginInput) (domainauth.Credential, error) {
	if a.LoginFunc != nil {
		return a.LoginFunc(ctx, in)
	}
	return domainauth.Credential("token-for-" + in.Email), nil
}

func (a *StubAuthenticator) Register(ctx context.Context, in ports.RegisterInput) error {
	if a.RegisterFunc != nil {
		return a.RegisterFunc(ctx, in)
	}
	return nil
}

func (a *StubAuthenticator) Logout(ctx context.Context, cred domainauth.Credential) error {
	if a.LogoutFunc != nil {
		return a.LogoutFunc(ctx, cred)
	}
	return nil
}
