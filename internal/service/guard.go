package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

// SessionGuardOptions groups dependencies for SessionGuard.
type SessionGuardOptions struct {
	Validator ports.CredentialValidator // Required: backend validation call
	Policy    domainauth.FailurePolicy  // Optional: defaults to fail-closed
	Logger    *slog.Logger              // Optional: structured logger
}

// SessionGuard decides whether the holder of a credential slot may enter a protected area.
// It reads the slot, validates a present credential against the backend exactly once, and
// clears the slot when the backend refuses it. It never writes a credential.
type SessionGuard struct {
	validator ports.CredentialValidator
	policy    domainauth.FailurePolicy
	logger    *slog.Logger
}

// CheckResult is the settled outcome of one access check.
type CheckResult struct {
	State  domainauth.SessionState
	Reason domainauth.CheckReason
	// Err is the underlying failure, kept for logging only.
	Err error
}

// NewSessionGuard constructs a new SessionGuard.
func NewSessionGuard(opts SessionGuardOptions) (*SessionGuard, error) {
	if opts.Validator == nil {
		return nil, errors.New("CredentialValidator is required")
	}

	policy := opts.Policy
	if policy == "" {
		policy = domainauth.PolicyFailClosed
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionGuard{
		validator: opts.Validator,
		policy:    policy,
		logger:    logger.With("component", "session_guard"),
	}, nil
}

// MustNewSessionGuard constructs a new SessionGuard and panics on error.
// Use this when you want fail-fast behavior during application startup.
func MustNewSessionGuard(opts SessionGuardOptions) *SessionGuard {
	guard, err := NewSessionGuard(opts)
	if err != nil {
		panic(err) //nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
	}
	return guard
}

// Policy returns the transport-failure policy in effect.
func (g *SessionGuard) Policy() domainauth.FailurePolicy { return g.policy }

// CheckAccess runs one full access check against slot and blocks until it settles.
//
// An empty slot settles unauthenticated without contacting the backend. A present
// credential is validated once; acceptance settles authenticated and leaves the slot
// untouched, rejection clears the slot. Transport failures clear the slot only under the
// fail-closed policy. If ctx ends before the check settles the result is discarded:
// the state stays unknown and the slot is left alone.
func (g *SessionGuard) CheckAccess(ctx context.Context, slot ports.CredentialSlot) CheckResult {
	v := g.evaluate(ctx, slot)
	if ctx.Err() != nil {
		return canceledResult(ctx.Err())
	}
	return g.settle(ctx, slot, v)
}

// verdict is the outcome of an access check before any write to the slot.
type verdict struct {
	result    CheckResult
	clearSlot bool
}

// evaluate reads the slot and validates a present credential. It never writes.
func (g *SessionGuard) evaluate(ctx context.Context, slot ports.CredentialSlot) verdict {
	cred, err := slot.Get(ctx)
	if err != nil && !errors.Is(err, domainauth.ErrNoCredential) {
		return verdict{result: CheckResult{
			State: domainauth.StateUnauthenticated, Reason: domainauth.ReasonStoreFailure, Err: err,
		}}
	}
	if err != nil || cred.IsZero() {
		return verdict{result: CheckResult{State: domainauth.StateUnauthenticated, Reason: domainauth.ReasonNoCredential}}
	}

	err = g.validator.Validate(ctx, cred)
	switch {
	case err == nil:
		return verdict{result: CheckResult{State: domainauth.StateAuthenticated, Reason: domainauth.ReasonAccepted}}
	case ctx.Err() != nil:
		return verdict{result: canceledResult(ctx.Err())}
	case errors.Is(err, domainauth.ErrCredentialRejected):
		return verdict{
			result:    CheckResult{State: domainauth.StateUnauthenticated, Reason: domainauth.ReasonCredentialRejected, Err: err},
			clearSlot: true,
		}
	default:
		return verdict{
			result:    CheckResult{State: domainauth.StateUnauthenticated, Reason: domainauth.ReasonTransportFailure, Err: err},
			clearSlot: g.policy.ClearsOnTransportFailure(),
		}
	}
}

// settle applies the verdict's slot write and logs the outcome.
func (g *SessionGuard) settle(ctx context.Context, slot ports.CredentialSlot, v verdict) CheckResult {
	res := v.result
	if v.clearSlot {
		if err := slot.Clear(ctx); err != nil {
			g.logger.WarnContext(ctx, "clear credential failed", "error", err)
		}
	}

	switch res.Reason {
	case domainauth.ReasonStoreFailure:
		g.logger.WarnContext(ctx, "credential slot unreadable", "error", res.Err)
	case domainauth.ReasonNoCredential, domainauth.ReasonAccepted:
		g.logger.DebugContext(ctx, "access check settled", "reason", res.Reason)
	case domainauth.ReasonTransportFailure:
		g.logger.WarnContext(ctx, "access check settled",
			"reason", res.Reason,
			"policy", g.policy,
			"error", res.Err)
	default:
		g.logger.WarnContext(ctx, "access check settled", "reason", res.Reason, "error", res.Err)
	}
	return res
}

func canceledResult(err error) CheckResult {
	return CheckResult{State: domainauth.StateUnknown, Reason: domainauth.ReasonCanceled, Err: err}
}

// Mount starts an access check in the background and returns a handle to observe it.
// The handle reports StateUnknown until the check settles. Cancel unmounts the check:
// the in-flight validation is canceled and its late result is discarded. Once the check
// has settled, including any clear of the slot, Cancel no longer changes the result.
func (g *SessionGuard) Mount(ctx context.Context, slot ports.CredentialSlot) *GuardCheck {
	checkCtx, cancel := context.WithCancel(ctx)
	c := &GuardCheck{
		cancel: cancel,
		done:   make(chan struct{}),
		result: CheckResult{State: domainauth.StateUnknown, Reason: domainauth.ReasonPending},
	}

	go func() {
		defer close(c.done)
		defer cancel()
		v := g.evaluate(checkCtx, slot)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.canceled || checkCtx.Err() != nil {
			c.result = canceledResult(context.Canceled)
			return
		}
		// Cancel waits on c.mu, so the slot write below is never cut short by it.
		c.result = g.settle(context.WithoutCancel(checkCtx), slot, v)
	}()

	return c
}

// GuardCheck is one mounted access check.
type GuardCheck struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	result   CheckResult
	canceled bool
}

// State returns the current session state; StateUnknown while the check is outstanding.
func (c *GuardCheck) State() domainauth.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.State
}

// Done is closed once the check has settled or been discarded.
func (c *GuardCheck) Done() <-chan struct{} { return c.done }

// Wait blocks until the check finishes and returns its result.
func (c *GuardCheck) Wait() CheckResult {
	<-c.done
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Cancel unmounts the check. Calling it after the check settled has no effect on the result.
func (c *GuardCheck) Cancel() {
	c.mu.Lock()
	select {
	case <-c.done:
	default:
		c.canceled = true
	}
	c.mu.Unlock()
	c.cancel()
}
