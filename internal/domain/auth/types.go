package auth

// Package auth contains domain-level types for credentials and guarded sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"fmt"
	"strings"
)

// Credential is the opaque bearer token issued by the backend at login.
// The zero value means no credential is held.
type Credential string

// IsZero reports whether the credential is absent.
func (c Credential) IsZero() bool { return strings.TrimSpace(string(c)) == "" }

// String redacts the token so it never ends up in logs by accident.
func (c Credential) String() string {
	if c.IsZero() {
		return "<none>"
	}
	return "<redacted>"
}

// Value returns the raw token for use in an Authorization header.
func (c Credential) Value() string { return string(c) }

var (
	// ErrNoCredential is returned by a credential slot that holds nothing.
	ErrNoCredential = errors.New("no credential")
	// ErrCredentialRejected is returned when the backend answers 401 or 403.
	ErrCredentialRejected = errors.New("credential rejected")
)

// SessionState is the derived, non-persisted view of a guarded session.
type SessionState int

const (
	// StateUnknown means the access check has not settled yet.
	StateUnknown SessionState = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Settled reports whether the state is final for the current check cycle.
func (s SessionState) Settled() bool { return s != StateUnknown }

// CheckReason explains how an access check settled.
type CheckReason string

const (
	ReasonPending            CheckReason = "pending"
	ReasonAccepted           CheckReason = "accepted"
	ReasonNoCredential       CheckReason = "no_credential"
	ReasonCredentialRejected CheckReason = "credential_rejected"
	ReasonTransportFailure   CheckReason = "transport_failure"
	ReasonStoreFailure       CheckReason = "store_failure"
	ReasonCanceled           CheckReason = "canceled"
)

// FailurePolicy decides what a transport failure during validation does to the credential.
type FailurePolicy string

const (
	// PolicyFailClosed treats any validation failure like an explicit rejection and
	// clears the credential.
	PolicyFailClosed FailurePolicy = "fail-closed"
	// PolicyStrict clears the credential only on an explicit 401/403. Transport failures
	// still deny access but keep the credential for the next attempt.
	PolicyStrict FailurePolicy = "strict"
)

// UnmarshalText implements encoding.TextUnmarshaler so the policy can be read straight
// from configuration.
func (p *FailurePolicy) UnmarshalText(text []byte) error {
	v := FailurePolicy(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case PolicyFailClosed, PolicyStrict:
		*p = v
		return nil
	default:
		return fmt.Errorf("invalid FailurePolicy: %q (valid options: fail-closed, strict)", v)
	}
}

// ClearsOnTransportFailure reports whether the policy drops the credential when the
// backend could not be reached.
func (p FailurePolicy) ClearsOnTransportFailure() bool { return p != PolicyStrict }
